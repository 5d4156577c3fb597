//go:build !linux

package diag

// DefaultMemoryInspector returns an inspector that never reports statistics;
// memory introspection is only wired up on Linux.
func DefaultMemoryInspector() MemoryInspector {
	return unavailableMemory{}
}
