//go:build unix

package diag

import (
	"fmt"
	"syscall"

	"golang.org/x/sys/unix"
)

type platformDescriber struct{}

// DefaultDescriber returns a describer backed by the platform errno table.
func DefaultDescriber() Describer {
	return platformDescriber{}
}

func (platformDescriber) Describe(code syscall.Errno) ErrorDescriptor {
	name := unix.ErrnoName(code)
	if name == "" {
		name = fmt.Sprintf("E%d", int(code))
	}
	return ErrorDescriptor{
		Code:        code,
		CodeText:    name,
		Description: code.Error(),
	}
}
