// Package cvec provides split-form complex vectors and elementwise arithmetic.
//
// A Buffer stores the real and imaginary parts of a complex vector in two
// parallel float64 slices. This split layout keeps pairwise arithmetic
// cache-friendly and is the shape shared by all higher layers (FFT kernel,
// windowing, spectrum pipeline).
//
// Every arithmetic operation comes in two forms:
//   - an allocating form (Add, Mul, ...) returning a fresh Buffer
//   - a write-into form (AddInto, MulInto, ...) overwriting a caller-supplied
//     destination, which may alias either input
//
// The write-into forms read the i-th elements of their inputs before writing
// the i-th element of the destination, so dst == a or dst == b is always
// valid. Overlapping-but-offset slices are not supported.
//
// Division by a complex zero is not guarded and yields ±Inf/NaN per IEEE-754.
package cvec
