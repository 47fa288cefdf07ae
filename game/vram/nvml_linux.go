//go:build linux && cgo

package vram

import "github.com/NVIDIA/go-nvml/pkg/nvml"

// queryNVMLPerProcess queries per-process V-RAM bytes through NVIDIA NVML.
// Graphics process lists are preferred over compute; with multiple devices
// the maximum per-device value for the pid is returned (typical single-GPU
// setups report on exactly one device).
func queryNVMLPerProcess(pid uint32) (uint64, bool) {
	if ret := nvml.Init(); ret != nvml.SUCCESS {
		return 0, false
	}
	defer nvml.Shutdown()

	count, ret := nvml.DeviceGetCount()
	if ret != nvml.SUCCESS {
		return 0, false
	}

	var best uint64
	found := false
	for i := 0; i < count; i++ {
		device, ret := nvml.DeviceGetHandleByIndex(i)
		if ret != nvml.SUCCESS {
			continue
		}

		bytes, ok := processBytes(device.GetGraphicsRunningProcesses())(pid)
		if !ok {
			bytes, ok = processBytes(device.GetComputeRunningProcesses())(pid)
		}
		if ok && (!found || bytes > best) {
			best = bytes
			found = true
		}
	}

	return best, found
}

// processBytes adapts an NVML process list lookup into a pid match.
func processBytes(procs []nvml.ProcessInfo, ret nvml.Return) func(pid uint32) (uint64, bool) {
	return func(pid uint32) (uint64, bool) {
		if ret != nvml.SUCCESS {
			return 0, false
		}
		for _, p := range procs {
			if p.Pid == pid {
				return p.UsedGpuMemory, true
			}
		}
		return 0, false
	}
}
