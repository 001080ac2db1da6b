package plugin

import (
	"fmt"
	"sync"
)

// Container is the shared service container providers configure their
// dependencies into. It is mutated only during the composing phase, by
// provider ConfigureServices hooks; after the host reaches Ready it is
// read-only and safe for concurrent readers.
type Container struct {
	mu       sync.RWMutex
	services map[string]interface{}
	order    []string
}

// NewContainer creates an empty service container.
func NewContainer() *Container {
	return &Container{
		services: make(map[string]interface{}),
	}
}

// Register binds a service under the given name.
// Returns an error if the name is already bound.
func (c *Container) Register(name string, svc interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.services[name]; ok {
		return fmt.Errorf("service %q is already registered", name)
	}

	c.services[name] = svc
	c.order = append(c.order, name)
	return nil
}

// MustRegister binds a service under the given name.
// Panics if the name is already bound.
func (c *Container) MustRegister(name string, svc interface{}) {
	if err := c.Register(name, svc); err != nil {
		panic(err)
	}
}

// Resolve returns the service bound under the given name.
func (c *Container) Resolve(name string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	svc, ok := c.services[name]
	return svc, ok
}

// Len returns the number of bound services.
func (c *Container) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.services)
}

// Range iterates over all bound services in registration order and calls
// the given function. If the function returns false, iteration stops.
func (c *Container) Range(fn func(name string, svc interface{}) bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, name := range c.order {
		if !fn(name, c.services[name]) {
			break
		}
	}
}
