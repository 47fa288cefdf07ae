//go:build !linux || !cgo

package vram

// queryNVMLPerProcess is an immediate miss when NVML support is not
// compiled in.
func queryNVMLPerProcess(uint32) (uint64, bool) { return 0, false }
