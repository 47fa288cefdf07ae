package debug

import (
	"errors"
	"testing"
)

// fakeProbe is a synthetic metrics backend for tests.
type fakeProbe struct {
	global  float64
	procCPU float64
	mem     uint64
	cores   int
	brands  []string
	names   []string
	err     error

	refreshes int
}

func (f *fakeProbe) GlobalCPUPercent() (float64, error) {
	f.refreshes++
	return f.global, f.err
}
func (f *fakeProbe) ProcessCPUPercent() (float64, error) { return f.procCPU, f.err }
func (f *fakeProbe) ProcessMemoryBytes() (uint64, error) { return f.mem, f.err }
func (f *fakeProbe) LogicalCores() int                   { return f.cores }
func (f *fakeProbe) CPUBrands() []string                 { return f.brands }
func (f *fakeProbe) CPUNames() []string                  { return f.names }

func TestSamplerNormalizesAppCPU(t *testing.T) {
	cases := []struct {
		raw   float64
		cores int
		want  float64
	}{
		{400, 8, 50},
		{50, 1, 50},
		{250, 2, 100},   // clamped high
		{-30, 4, 0},     // clamped low
		{1e6, 16, 100},  // absurd raw value still clamps
		{80, 0, 80},     // zero cores treated as 1
		{800, -2, 100},  // negative cores treated as 1, then clamped
	}

	for _, c := range cases {
		probe := &fakeProbe{procCPU: c.raw, cores: c.cores}
		s := NewSampler(withProbe(probe))
		if got := s.AppCPUPercent(); got != c.want {
			t.Errorf("AppCPUPercent() with raw=%v cores=%d = %v, want %v", c.raw, c.cores, got, c.want)
		}
	}
}

func TestSamplerZeroOnBackendError(t *testing.T) {
	probe := &fakeProbe{global: 55, procCPU: 70, mem: 1024, cores: 4, err: errors.New("process gone")}
	s := NewSampler(withProbe(probe))

	if got := s.CPUAllPercent(); got != 0 {
		t.Errorf("CPUAllPercent() = %v with failing backend, want 0", got)
	}
	if got := s.AppCPUPercent(); got != 0 {
		t.Errorf("AppCPUPercent() = %v with failing backend, want 0", got)
	}
	if got := s.AppMemBytes(); got != 0 {
		t.Errorf("AppMemBytes() = %v with failing backend, want 0", got)
	}
}

func TestSamplerRateLimiting(t *testing.T) {
	probe := &fakeProbe{cores: 1}
	s := NewSampler(withProbe(probe))

	// Construction takes the initial reading.
	if probe.refreshes != 1 {
		t.Fatalf("refreshes after construction = %d, want 1", probe.refreshes)
	}

	if s.Poll(0.2, true) {
		t.Error("Poll(0.2) fired before the 0.5s interval elapsed")
	}
	if s.Poll(0.2, true) {
		t.Error("Poll(0.4) fired before the 0.5s interval elapsed")
	}
	if !s.Poll(0.2, true) {
		t.Error("Poll(0.6) did not fire after the interval elapsed")
	}
	if probe.refreshes != 2 {
		t.Errorf("refreshes = %d after one timer expiry, want 2", probe.refreshes)
	}
}

func TestSamplerSkipsWhenHidden(t *testing.T) {
	probe := &fakeProbe{cores: 1}
	s := NewSampler(withProbe(probe))

	for i := 0; i < 10; i++ {
		if s.Poll(10, false) {
			t.Fatal("Poll fired while the overlay is hidden")
		}
	}
	if probe.refreshes != 1 {
		t.Errorf("refreshes = %d while hidden, want 1 (initial only)", probe.refreshes)
	}
}

func TestResolveCPUBrand(t *testing.T) {
	cases := []struct {
		brands []string
		names  []string
		want   string
	}{
		{[]string{"  AMD Ryzen 9 7950X  "}, nil, "AMD Ryzen 9 7950X"},
		{[]string{"", "   ", "Intel(R) Core(TM) i7"}, nil, "Intel(R) Core(TM) i7"},
		{[]string{"", ""}, []string{" GenuineIntel "}, "GenuineIntel"},
		{nil, nil, "Unknown CPU"},
		{[]string{"   "}, []string{""}, "Unknown CPU"},
	}

	for _, c := range cases {
		s := NewSampler(withProbe(&fakeProbe{cores: 1, brands: c.brands, names: c.names}))
		if got := s.ResolveCPUBrand(); got != c.want {
			t.Errorf("ResolveCPUBrand() with brands=%q names=%q = %q, want %q", c.brands, c.names, got, c.want)
		}
	}
}
