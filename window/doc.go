// Package window provides analysis window tables and the windowing multiply.
//
// Supported windows are rectangular, Hann, Hamming, and Blackman, each with
// its standard closed-form coefficients. A size-1 window is always [1].
package window
