package debug

// SamplerOption is a functional option for configuring a Sampler.
type SamplerOption func(*samplerImpl)

// WithSampleInterval sets how often the OS backend is re-queried.
//
// Parameters:
//   - seconds: the repeating sample interval (defaults to 0.5)
//
// Returns:
//   - SamplerOption: functional option to set the interval
func WithSampleInterval(seconds float32) SamplerOption {
	return func(s *samplerImpl) {
		if seconds > 0 {
			s.interval = seconds
		}
	}
}

// withProbe swaps the metrics backend. Used by tests to inject synthetic
// readings.
func withProbe(p systemProbe) SamplerOption {
	return func(s *samplerImpl) {
		s.probe = p
	}
}
