package plugin

import (
	"context"
)

// fakeProvider is a configurable Provider for the framework tests.
type fakeProvider struct {
	id     string
	name   string
	prefix string
	tools  []ToolDefinition

	configure func(c *Container) error
	init      func(ctx context.Context) error
	ctrl      func() *ControllerModule
}

var _ Provider = (*fakeProvider)(nil)

func (f *fakeProvider) Metadata() Metadata {
	name := f.name
	if name == "" {
		name = f.id
	}
	return Metadata{
		ID:          f.id,
		Name:        name,
		Version:     "0.0.1",
		RoutePrefix: f.prefix,
	}
}

func (f *fakeProvider) ConfigureServices(c *Container) error {
	if f.configure != nil {
		return f.configure(c)
	}
	return nil
}

func (f *fakeProvider) Tools() []ToolDefinition {
	return f.tools
}

func (f *fakeProvider) Controller() *ControllerModule {
	if f.ctrl != nil {
		return f.ctrl()
	}
	return nil
}

func (f *fakeProvider) Init(ctx context.Context) error {
	if f.init != nil {
		return f.init(ctx)
	}
	return nil
}

// echoTool builds a trivial tool definition with the given name.
func echoTool(name string) ToolDefinition {
	return ToolDefinition{
		Name:        name,
		Description: "echoes its input",
		Handler: func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
			return params, nil
		},
	}
}

// recordingTransport captures every descriptor installed into it.
type recordingTransport struct {
	installed []ToolDescriptor
}

var _ ToolTransport = (*recordingTransport)(nil)

func (t *recordingTransport) RegisterTool(d ToolDescriptor) {
	t.installed = append(t.installed, d)
}
