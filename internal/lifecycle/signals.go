package lifecycle

import (
	"context"
	"fmt"
	"loglib/internal/global"
	"loglib/pkg/event"
	"loglib/pkg/level"
	"os"
	"os/signal"
	"syscall"
)

// Signals that end the process
var ShutdownSignals = []os.Signal{syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGHUP}

// Handles incoming termination signals. Logs the signal under the runtime application,
// runs shutdown and returns. Also returns (without shutdown) when ctx is done.
func SignalHandler(ctx context.Context, reporter Reporter, shutdown func()) {
	// Channel for handling interrupt signals
	sigChan := make(chan os.Signal, 10)
	signal.Notify(sigChan, ShutdownSignals...)
	defer signal.Stop(sigChan)

	handleSignal(ctx, sigChan, reporter, shutdown)
}

func handleSignal(ctx context.Context, sigChan <-chan os.Signal, reporter Reporter, shutdown func()) {
	select {
	case <-ctx.Done():
		return
	case sig := <-sigChan:
		evt := event.New(fmt.Sprintf("Received signal: %v", sig), level.Info)
		evt.SetBacktrace([]event.StackFrame{})
		_ = emit(reporter, global.RuntimeApplication, evt)
	}

	// Initiate shutdown
	if shutdown != nil {
		shutdown()
	}
}
