// Package diag turns platform error codes into structured failure reports.
//
// Platform calls that fail leave an error code behind. Instead of relying on
// a hidden process-wide errno, codes are recorded into an explicit Indicator
// which is inspected (and cleared) at checkpoints with Checker.CheckSystemError.
// Two codes that benign platform calls are known to leave behind (EWOULDBLOCK
// and EINVAL) are never reported.
package diag

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"syscall"

	"github.com/achilleasa/sampletrace/log"
)

const bytesInMegabyte = 1 << 20

// ErrorDescriptor is the human readable form of a platform error code.
type ErrorDescriptor struct {
	Code        syscall.Errno
	CodeText    string
	Description string
}

// A Describer resolves platform error codes.
type Describer interface {
	Describe(code syscall.Errno) ErrorDescriptor
}

// MemoryStats is a snapshot of physical memory in megabytes.
type MemoryStats struct {
	TotalMB uint64
	FreeMB  uint64
}

// A MemoryInspector reports physical memory statistics. Platforms without
// support return false.
type MemoryInspector interface {
	MemoryStats() (MemoryStats, bool)
}

// An Indicator holds the last recorded platform error code. The zero value
// holds no error and is ready to use. It is safe for concurrent use; a check
// reads and clears it atomically so a pending error is reported exactly once.
type Indicator struct {
	mu   sync.Mutex
	code syscall.Errno
}

// Set the pending error code.
func (ind *Indicator) Set(code syscall.Errno) {
	ind.mu.Lock()
	ind.code = code
	ind.mu.Unlock()
}

// Code returns the pending error code or 0.
func (ind *Indicator) Code() syscall.Errno {
	ind.mu.Lock()
	defer ind.mu.Unlock()
	return ind.code
}

// Reset clears the pending error code.
func (ind *Indicator) Reset() {
	ind.Set(0)
}

// Record stores the platform error code found in err's chain. It returns
// false and leaves the indicator untouched if err carries no code.
func (ind *Indicator) Record(err error) bool {
	var code syscall.Errno
	if !errors.As(err, &code) || code == 0 {
		return false
	}
	ind.Set(code)
	return true
}

// IsBenign reports whether code is one of the codes that are never reported.
func IsBenign(code syscall.Errno) bool {
	return code == syscall.EWOULDBLOCK || code == syscall.EINVAL
}

// SystemError is returned by CheckSystemError when a pending platform error
// is found. Unwrap returns the platform code so callers can use errors.Is.
type SystemError struct {
	ErrorDescriptor

	// Memory is nil when the platform cannot report memory statistics.
	Memory *MemoryStats

	// The fully composed report.
	Message string
}

func (e *SystemError) Error() string {
	return e.Message
}

func (e *SystemError) Unwrap() error {
	return e.Code
}

// Checker inspects indicators and builds failure reports.
type Checker struct {
	describer Describer
	memory    MemoryInspector
	logger    log.Logger
}

// Create a checker. A nil memory inspector disables memory statistics.
func NewChecker(describer Describer, memory MemoryInspector) *Checker {
	if memory == nil {
		memory = unavailableMemory{}
	}
	return &Checker{
		describer: describer,
		memory:    memory,
		logger:    log.New("diag"),
	}
}

// CheckSystemError inspects the indicator. If it holds no error, or a benign
// one, nothing happens and nil is returned. Otherwise the indicator is cleared
// and a *SystemError carrying message, the resolved error text and the memory
// statistics (when available) is returned.
func (c *Checker) CheckSystemError(ind *Indicator, message string) error {
	c.logger.Debugf("checking system error: %s", message)

	ind.mu.Lock()
	defer ind.mu.Unlock()

	code := ind.code
	if code == 0 || IsBenign(code) {
		return nil
	}

	desc := c.describer.Describe(code)
	c.logger.Debugf("error code: %s", desc.CodeText)

	var msg strings.Builder
	fmt.Fprintf(&msg, "%s\n%s\n%s\nerrno (%d): %s", message, desc.CodeText, desc.Description, int(code), code.Error())

	sysErr := &SystemError{ErrorDescriptor: desc}
	if stats, ok := c.memory.MemoryStats(); ok {
		sysErr.Memory = &stats
		c.logger.Infof("available memory: %d MB", stats.TotalMB)
		c.logger.Infof("free memory: %d MB", stats.FreeMB)
		fmt.Fprintf(&msg, "\navailable memory: %d MB\nfree memory: %d MB", stats.TotalMB, stats.FreeMB)
	}
	sysErr.Message = msg.String()
	c.logger.Errorf("system error: %s", sysErr.Message)

	// Clear the code so the next check does not report it again.
	ind.code = 0

	return sysErr
}

type unavailableMemory struct{}

func (unavailableMemory) MemoryStats() (MemoryStats, bool) {
	return MemoryStats{}, false
}

// The process indicator adapts code that follows the errno convention of
// leaving a code behind for a later check.
var (
	processIndicator Indicator
	defaultChecker   = NewChecker(DefaultDescriber(), DefaultMemoryInspector())
)

// ProcessIndicator returns the indicator shared by Record and CheckSystemError.
func ProcessIndicator() *Indicator {
	return &processIndicator
}

// Record stores the platform error code of err in the process indicator.
func Record(err error) bool {
	return processIndicator.Record(err)
}

// CheckSystemError checks the process indicator using the platform describer
// and memory inspector.
func CheckSystemError(message string) error {
	return defaultChecker.CheckSystemError(&processIndicator, message)
}
