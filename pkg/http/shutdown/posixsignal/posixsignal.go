// Package posixsignal provides a shutdown manager that listens for POSIX
// termination signals.
package posixsignal

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/retailmesh/storemind/pkg/http/shutdown"
)

// Name defines the shutdown manager name.
const Name = "PosixSignalManager"

// PosixSignalManager implements shutdown.Manager. It triggers shutdown on
// the configured signals and exits after the callbacks complete.
type PosixSignalManager struct {
	signals []os.Signal
}

// NewPosixSignalManager creates a manager for the given signals,
// defaulting to SIGINT and SIGTERM.
func NewPosixSignalManager(sig ...os.Signal) *PosixSignalManager {
	if len(sig) == 0 {
		sig = []os.Signal{os.Interrupt, syscall.SIGTERM}
	}
	return &PosixSignalManager{signals: sig}
}

// GetName returns the manager name.
func (p *PosixSignalManager) GetName() string {
	return Name
}

// Start begins listening for the configured signals.
func (p *PosixSignalManager) Start(gs shutdown.GSInterface) error {
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, p.signals...)

		<-c
		gs.StartShutdown(p)
		os.Exit(0)
	}()

	return nil
}
