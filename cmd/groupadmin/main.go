// Command groupadmin is the operator console of the group admin service.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"groupadmin/server/internal/console/term"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		// failed actions already reported through the notifier
		if !errors.Is(err, errFailed) {
			term.NewNotifier(os.Stderr).Error(err.Error())
		}
		os.Exit(1)
	}
}
