package debug

import (
	"os"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/process"
)

// gopsutilProbe is the production systemProbe, reading counters through
// gopsutil. The process handle is resolved once at construction; if the
// process cannot be found by the backend, readings degrade to zero through
// the returned errors.
type gopsutilProbe struct {
	proc *process.Process
}

var _ systemProbe = &gopsutilProbe{}

func newGopsutilProbe() *gopsutilProbe {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		p = nil
	}
	return &gopsutilProbe{proc: p}
}

func (g *gopsutilProbe) GlobalCPUPercent() (float64, error) {
	// interval=0 measures the delta since the previous call.
	pcts, err := cpu.Percent(0, false)
	if err != nil {
		return 0, err
	}
	if len(pcts) == 0 {
		return 0, nil
	}
	return pcts[0], nil
}

func (g *gopsutilProbe) ProcessCPUPercent() (float64, error) {
	if g.proc == nil {
		return 0, os.ErrProcessDone
	}
	return g.proc.Percent(0)
}

func (g *gopsutilProbe) ProcessMemoryBytes() (uint64, error) {
	if g.proc == nil {
		return 0, os.ErrProcessDone
	}
	info, err := g.proc.MemoryInfo()
	if err != nil {
		return 0, err
	}
	return info.RSS, nil
}

func (g *gopsutilProbe) LogicalCores() int {
	n, err := cpu.Counts(true)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func (g *gopsutilProbe) CPUBrands() []string {
	infos, err := cpu.Info()
	if err != nil {
		return nil
	}
	brands := make([]string, 0, len(infos))
	for _, info := range infos {
		brands = append(brands, info.ModelName)
	}
	return brands
}

func (g *gopsutilProbe) CPUNames() []string {
	infos, err := cpu.Info()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.VendorID)
	}
	return names
}
