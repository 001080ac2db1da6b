package plugin

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeConfiguresAllBeforeInit(t *testing.T) {
	var events []string
	mk := func(id string) *fakeProvider {
		return &fakeProvider{
			id: id,
			configure: func(*Container) error {
				events = append(events, "configure:"+id)
				return nil
			},
			init: func(context.Context) error {
				events = append(events, "init:"+id)
				return nil
			},
		}
	}

	reg := NewRegistry()
	require.True(t, reg.Register(mk("a")))
	require.True(t, reg.Register(mk("b")))

	NewComposer(nil).Compose(context.Background(), reg, NewContainer())

	assert.Equal(t, []string{"configure:a", "configure:b", "init:a", "init:b"}, events)
}

func TestComposeDropsProviderOnConfigureFailure(t *testing.T) {
	reg := NewRegistry()
	require.True(t, reg.Register(&fakeProvider{
		id:        "broken",
		tools:     []ToolDefinition{echoTool("broken_tool")},
		configure: func(*Container) error { return fmt.Errorf("no database") },
	}))
	require.True(t, reg.Register(&fakeProvider{
		id:    "healthy",
		tools: []ToolDefinition{echoTool("healthy_tool")},
	}))

	transport := &recordingTransport{}
	tools := NewComposer(transport).Compose(context.Background(), reg, NewContainer())

	require.Len(t, tools, 1)
	assert.Equal(t, "healthy_tool", tools[0].Name)
	require.Len(t, transport.installed, 1)
	assert.Equal(t, "healthy", transport.installed[0].ProviderID)

	// The dropped provider stays in the registry; only its contribution
	// is withheld.
	assert.Equal(t, 2, reg.Len())
}

func TestComposeDropsProviderOnInitFailure(t *testing.T) {
	reg := NewRegistry()
	require.True(t, reg.Register(&fakeProvider{
		id:    "flaky",
		tools: []ToolDefinition{echoTool("flaky_tool")},
		init:  func(context.Context) error { return fmt.Errorf("dependency missing") },
	}))
	require.True(t, reg.Register(&fakeProvider{
		id:    "healthy",
		tools: []ToolDefinition{echoTool("healthy_tool")},
	}))

	tools := NewComposer(nil).Compose(context.Background(), reg, NewContainer())

	require.Len(t, tools, 1)
	assert.Equal(t, "healthy_tool", tools[0].Name)
}

func TestComposeRecoversFromPanickingHooks(t *testing.T) {
	reg := NewRegistry()
	require.True(t, reg.Register(&fakeProvider{
		id:        "panics-configure",
		configure: func(*Container) error { panic("configure boom") },
	}))
	require.True(t, reg.Register(&fakeProvider{
		id:   "panics-init",
		init: func(context.Context) error { panic("init boom") },
	}))
	require.True(t, reg.Register(&fakeProvider{
		id:    "healthy",
		tools: []ToolDefinition{echoTool("healthy_tool")},
	}))

	var tools []ToolDescriptor
	assert.NotPanics(t, func() {
		tools = NewComposer(nil).Compose(context.Background(), reg, NewContainer())
	})
	require.Len(t, tools, 1)
	assert.Equal(t, "healthy", tools[0].ProviderID)
}

func TestComposeResolvesCrossProviderDependency(t *testing.T) {
	// The consumer registers before the producer, so its dependency only
	// exists once every ConfigureServices hook has run.
	var resolved interface{}

	container := NewContainer()
	consumer := &fakeProvider{
		id: "early-consumer",
		init: func(context.Context) error {
			svc, ok := container.Resolve("shared.service")
			if !ok {
				return fmt.Errorf("shared.service not bound")
			}
			resolved = svc
			return nil
		},
	}
	producer := &fakeProvider{
		id: "late-producer",
		configure: func(c *Container) error {
			return c.Register("shared.service", "the-service")
		},
	}

	reg := NewRegistry()
	require.True(t, reg.Register(consumer))
	require.True(t, reg.Register(producer))

	tools := NewComposer(nil).Compose(context.Background(), reg, container)

	assert.Equal(t, "the-service", resolved)
	assert.Empty(t, tools)
}

func TestComposeEmptyRegistry(t *testing.T) {
	transport := &recordingTransport{}
	tools := NewComposer(transport).Compose(context.Background(), NewRegistry(), NewContainer())

	assert.Empty(t, tools)
	assert.Empty(t, transport.installed)
}
