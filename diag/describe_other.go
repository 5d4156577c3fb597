//go:build !unix

package diag

import (
	"fmt"
	"syscall"
)

type platformDescriber struct{}

// DefaultDescriber returns a describer that relies on the error text provided
// by the syscall package.
func DefaultDescriber() Describer {
	return platformDescriber{}
}

func (platformDescriber) Describe(code syscall.Errno) ErrorDescriptor {
	return ErrorDescriptor{
		Code:        code,
		CodeText:    fmt.Sprintf("errno %d", int(code)),
		Description: code.Error(),
	}
}
