package cmd

import (
	"syscall"

	"github.com/achilleasa/sampletrace/diag"
	"github.com/urfave/cli"
)

// Inject a platform error code and run the system error check against it.
func Diagnose(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	diag.ProcessIndicator().Set(syscall.Errno(ctx.Int("errno")))
	if err := diag.CheckSystemError(ctx.String("message")); err != nil {
		return err
	}

	logger.Notice("no system error to report")
	return nil
}
