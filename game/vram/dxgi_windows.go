//go:build windows

package vram

// queryDXGIAdapterUsage would report adapter-local "CurrentUsage" bytes via
// IDXGIAdapter3.QueryVideoMemoryInfo, covering AMD and NVIDIA adapters with
// adapter-wide scope. The COM plumbing is not wired up yet, so the backend
// misses and detection falls through to the remaining backends.
//
// TODO: load dxgi.dll and call QueryVideoMemoryInfo on the first IDXGIAdapter3.
func queryDXGIAdapterUsage() (uint64, bool) { return 0, false }
