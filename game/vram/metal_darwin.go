//go:build darwin

package vram

// queryMetalDeviceAllocated would report the system default Metal device's
// currentAllocatedSize (device-wide scope). Binding Metal requires cgo and
// an Objective-C shim that is not wired up yet, so the backend misses.
func queryMetalDeviceAllocated() (uint64, bool) { return 0, false }
