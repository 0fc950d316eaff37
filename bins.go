package spectrum

// BinFrequencies builds the frequency axis for a transform of the given size:
// freq[k] = k * sampleRate / size for k in [0, M), where M is size/2+1 for
// one-sided output and size for two-sided.
func BinFrequencies(size int, sampleRate float64, sides Sides) ([]float64, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	m := size
	if sides == OneSided {
		m = size/2 + 1
	}

	freqs := make([]float64, m)
	for k := range m {
		freqs[k] = float64(k) * sampleRate / float64(size)
	}

	return freqs, nil
}
