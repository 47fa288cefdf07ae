package vram

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Roots overridable in tests. On non-Linux hosts neither path exists and
// both amdgpu backends simply miss.
var (
	driDebugRoot = "/sys/kernel/debug/dri"
	drmClassRoot = "/sys/class/drm"
)

// queryAMDGPUPerProcess reads per-process V-RAM usage from the amdgpu
// debugfs interface. Requires debugfs to be mounted and readable (usually
// root only). Scans every /sys/kernel/debug/dri/<n> node, preferring
// amdgpu_vm_info blocks over amdgpu_gem_info lines.
func queryAMDGPUPerProcess(pid uint32) (uint64, bool) {
	entries, err := os.ReadDir(driDebugRoot)
	if err != nil {
		return 0, false
	}

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(driDebugRoot, e.Name())

		if data, err := os.ReadFile(filepath.Join(dir, "amdgpu_vm_info")); err == nil {
			if bytes, ok := parseVMInfoForPID(string(data), pid); ok {
				return bytes, true
			}
		}
		if data, err := os.ReadFile(filepath.Join(dir, "amdgpu_gem_info")); err == nil {
			if bytes, ok := parseGEMInfoForPID(string(data), pid); ok {
				return bytes, true
			}
		}
	}

	return 0, false
}

// queryDRMDeviceWide reads device-wide V-RAM usage counters exposed by the
// amdgpu driver under /sys/class/drm/card*/device. Returns the maximum
// across cards (multi-GPU systems report per-card counters).
func queryDRMDeviceWide() (uint64, bool) {
	entries, err := os.ReadDir(drmClassRoot)
	if err != nil {
		return 0, false
	}

	var best uint64
	found := false
	for _, e := range entries {
		name := e.Name()
		if !isCardName(name) {
			continue
		}
		devDir := filepath.Join(drmClassRoot, name, "device")
		if !isAMDGPUDevice(devDir) {
			continue
		}

		used, ok := readUintFile(filepath.Join(devDir, "mem_info_vram_used"))
		if !ok {
			used, ok = readUintFile(filepath.Join(devDir, "mem_info_vis_vram_used"))
		}
		if ok && (!found || used > best) {
			best = used
			found = true
		}
	}

	return best, found
}

// isCardName reports whether a /sys/class/drm entry is a primary card node
// ("card0", "card1", ...) rather than a connector or render node.
func isCardName(name string) bool {
	rest, ok := strings.CutPrefix(name, "card")
	if !ok || rest == "" {
		return false
	}
	for _, c := range rest {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// isAMDGPUDevice checks the device's driver symlink, falling back to the
// PCI vendor id (0x1002 = AMD).
func isAMDGPUDevice(devDir string) bool {
	if link, err := os.Readlink(filepath.Join(devDir, "driver")); err == nil {
		if filepath.Base(link) == "amdgpu" {
			return true
		}
	}
	vendor, ok := readUintFile(filepath.Join(devDir, "vendor"))
	return ok && vendor == 0x1002
}

// readUintFile reads a sysfs counter file holding a single hex ("0x...") or
// decimal number.
func readUintFile(path string) (uint64, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}
	t := strings.TrimSpace(string(data))
	if hex, ok := cutHexPrefix(t); ok {
		v, err := strconv.ParseUint(hex, 16, 64)
		return v, err == nil
	}
	v, err := strconv.ParseUint(t, 10, 64)
	return v, err == nil
}

func cutHexPrefix(s string) (string, bool) {
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		return rest, true
	}
	return strings.CutPrefix(s, "0X")
}

// parseVMInfoForPID scans amdgpu_vm_info content, which groups per-client
// allocation details into blank-line separated blocks, for the block owned
// by pid and extracts its vram byte count.
func parseVMInfoForPID(content string, pid uint32) (uint64, bool) {
	for _, block := range strings.Split(content, "\n\n") {
		if !containsPID(block, pid) {
			continue
		}
		if bytes, ok := extractVRAMBytes(block); ok {
			return bytes, true
		}
	}
	return 0, false
}

// parseGEMInfoForPID scans amdgpu_gem_info content line by line for an entry
// owned by pid and extracts its vram byte count.
func parseGEMInfoForPID(content string, pid uint32) (uint64, bool) {
	for _, line := range strings.Split(content, "\n") {
		if !containsPID(line, pid) {
			continue
		}
		if bytes, ok := extractVRAMBytes(line); ok {
			return bytes, true
		}
	}
	return 0, false
}

// containsPID reports whether text mentions "pid <n>" (case-insensitive)
// with a non-digit boundary after the number, so pid 12 does not match an
// entry for pid 123.
func containsPID(text string, pid uint32) bool {
	lower := strings.ToLower(text)
	needle := "pid " + strconv.FormatUint(uint64(pid), 10)
	idx := 0
	for {
		i := strings.Index(lower[idx:], needle)
		if i < 0 {
			return false
		}
		end := idx + i + len(needle)
		if end >= len(lower) || lower[end] < '0' || lower[end] > '9' {
			return true
		}
		idx = end
	}
}

// extractVRAMBytes finds a token containing "vram" and parses the first
// number-with-unit among the following three tokens.
func extractVRAMBytes(text string) (uint64, bool) {
	fields := strings.Fields(strings.ToLower(text))
	for i, tok := range fields {
		if !strings.Contains(tok, "vram") {
			continue
		}
		for j := i + 1; j <= i+3 && j < len(fields); j++ {
			if bytes, ok := parseNumberWithUnit(fields[j]); ok {
				return bytes, true
			}
		}
	}
	return 0, false
}

// parseNumberWithUnit parses tokens like "1234", "1234kb", "1234KiB",
// "size=1234mb". Bare numbers are bytes; k/kb/kib, m/mb/mib and g/gb/gib
// multiply by the binary unit. Unknown suffixes are treated as bytes.
func parseNumberWithUnit(token string) (uint64, bool) {
	t := strings.Trim(token, ":=")

	var digits, unit strings.Builder
	for _, c := range t {
		if c >= '0' && c <= '9' {
			digits.WriteRune(c)
		} else {
			unit.WriteRune(c)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	val, err := strconv.ParseUint(digits.String(), 10, 64)
	if err != nil {
		return 0, false
	}

	var mul uint64
	switch strings.ToLower(unit.String()) {
	case "", "b":
		mul = 1
	case "k", "kb", "kib":
		mul = 1024
	case "m", "mb", "mib":
		mul = 1024 * 1024
	case "g", "gb", "gib":
		mul = 1024 * 1024 * 1024
	default:
		mul = 1
	}
	return val * mul, true
}
