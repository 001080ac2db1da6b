// Package shutdown coordinates graceful process termination. Shutdown
// managers (e.g. POSIX signals) trigger the registered callbacks, each of
// which releases one resource.
package shutdown

import (
	"sync"
)

// Callback is the interface a shutdown callback must implement. The
// parameter is the name of the manager that triggered the shutdown.
type Callback interface {
	OnShutdown(manager string) error
}

// Func is a helper to turn a plain function into a Callback.
type Func func(manager string) error

// OnShutdown runs the wrapped function.
func (f Func) OnShutdown(manager string) error {
	return f(manager)
}

// Manager watches for a shutdown condition and reports it back to the
// GracefulShutdown that started it.
type Manager interface {
	GetName() string
	Start(gs GSInterface) error
}

// ErrorHandler receives errors raised by callbacks during shutdown.
type ErrorHandler interface {
	OnError(err error)
}

// GSInterface is the view of GracefulShutdown given to managers.
type GSInterface interface {
	StartShutdown(m Manager)
	ReportError(err error)
	AddShutdownCallback(callback Callback)
}

// GracefulShutdown maintains the callbacks and managers and runs the
// shutdown sequence when a manager fires.
type GracefulShutdown struct {
	callbacks    []Callback
	managers     []Manager
	errorHandler ErrorHandler
}

// New creates an empty GracefulShutdown.
func New() *GracefulShutdown {
	return &GracefulShutdown{
		callbacks: make([]Callback, 0, 8),
		managers:  make([]Manager, 0, 2),
	}
}

// Start starts all added managers.
func (gs *GracefulShutdown) Start() error {
	for _, manager := range gs.managers {
		if err := manager.Start(gs); err != nil {
			return err
		}
	}
	return nil
}

// AddShutdownManager adds a manager to be started by Start.
func (gs *GracefulShutdown) AddShutdownManager(manager Manager) {
	gs.managers = append(gs.managers, manager)
}

// AddShutdownCallback adds a callback to be run on shutdown.
func (gs *GracefulShutdown) AddShutdownCallback(callback Callback) {
	gs.callbacks = append(gs.callbacks, callback)
}

// SetErrorHandler sets the handler that receives callback errors.
func (gs *GracefulShutdown) SetErrorHandler(errorHandler ErrorHandler) {
	gs.errorHandler = errorHandler
}

// StartShutdown runs all callbacks concurrently and waits for them.
func (gs *GracefulShutdown) StartShutdown(m Manager) {
	var wg sync.WaitGroup
	for _, callback := range gs.callbacks {
		wg.Add(1)
		go func(callback Callback) {
			defer wg.Done()
			gs.ReportError(callback.OnShutdown(m.GetName()))
		}(callback)
	}
	wg.Wait()
}

// ReportError forwards err to the error handler, if one is set.
func (gs *GracefulShutdown) ReportError(err error) {
	if err != nil && gs.errorHandler != nil {
		gs.errorHandler.OnError(err)
	}
}
