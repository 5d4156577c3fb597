//go:build linux

package diag

import "golang.org/x/sys/unix"

type sysinfoMemory struct{}

// DefaultMemoryInspector returns an inspector backed by sysinfo(2).
func DefaultMemoryInspector() MemoryInspector {
	return sysinfoMemory{}
}

func (sysinfoMemory) MemoryStats() (MemoryStats, bool) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return MemoryStats{}, false
	}
	unit := uint64(info.Unit)
	return MemoryStats{
		TotalMB: uint64(info.Totalram) * unit / bytesInMegabyte,
		FreeMB:  uint64(info.Freeram) * unit / bytesInMegabyte,
	}, true
}
