package plugin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrapEmptyModulesReachesReady(t *testing.T) {
	host := (&HostConfig{}).Complete().New()

	require.NoError(t, host.Bootstrap(context.Background(), nil))

	assert.Equal(t, PhaseReady, host.Phase())
	assert.Equal(t, 0, host.Registry().Len())
	assert.Empty(t, host.Tools())
	assert.Equal(t, 0, host.BoundControllers())
}

func TestBootstrapRunsFullPipeline(t *testing.T) {
	modules := NewInTreeRegistry()
	modules.AddModule("retail", nil,
		func() (Provider, error) {
			return &fakeProvider{
				id:     "sales",
				prefix: "retail",
				tools:  []ToolDefinition{echoTool("sales_get_all")},
				ctrl:   pingModule("retail-v1", new(int)),
			}, nil
		},
		func() (Provider, error) {
			return &fakeProvider{
				id:    "inventory",
				tools: []ToolDefinition{echoTool("inventory_get_all")},
			}, nil
		},
	)

	transport := &recordingTransport{}
	host := (&HostConfig{Modules: modules, Transport: transport}).Complete().New()

	_, root := newTestRouter()
	require.NoError(t, host.Bootstrap(context.Background(), root))

	assert.Equal(t, PhaseReady, host.Phase())
	assert.Equal(t, 2, host.Registry().Len())
	assert.Len(t, host.Tools(), 2)
	assert.Len(t, transport.installed, 2)
	assert.Equal(t, 1, host.BoundControllers())
}

func TestBootstrapSecondCallFails(t *testing.T) {
	host := (&HostConfig{}).Complete().New()

	require.NoError(t, host.Bootstrap(context.Background(), nil))
	err := host.Bootstrap(context.Background(), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already started")
	assert.Equal(t, PhaseReady, host.Phase())
}

func TestBootstrapNilRoutesSkipsBinding(t *testing.T) {
	modules := NewInTreeRegistry()
	modules.AddModule("retail", nil, func() (Provider, error) {
		return &fakeProvider{
			id:   "sales",
			ctrl: pingModule("retail-v1", new(int)),
		}, nil
	})

	host := (&HostConfig{Modules: modules}).Complete().New()
	require.NoError(t, host.Bootstrap(context.Background(), nil))

	assert.Equal(t, PhaseReady, host.Phase())
	assert.Equal(t, 0, host.BoundControllers())
}

func TestBootstrapDuplicateIDsKeepFirst(t *testing.T) {
	modules := NewInTreeRegistry()
	modules.AddModule("first", nil, func() (Provider, error) {
		return &fakeProvider{id: "sales", name: "original"}, nil
	})
	modules.AddModule("second", nil, func() (Provider, error) {
		return &fakeProvider{id: "sales", name: "impostor"}, nil
	})

	host := (&HostConfig{Modules: modules}).Complete().New()
	require.NoError(t, host.Bootstrap(context.Background(), nil))

	assert.Equal(t, 1, host.Registry().Len())
	p, ok := host.Registry().Get("sales")
	require.True(t, ok)
	assert.Equal(t, "original", p.Metadata().Name)
}

func TestBootstrapToolOrderAndControllerCount(t *testing.T) {
	modules := NewInTreeRegistry()
	modules.AddModule("retail", nil,
		func() (Provider, error) {
			return &fakeProvider{
				id:    "inv",
				tools: []ToolDefinition{echoTool("inv_tool_one"), echoTool("inv_tool_two")},
			}, nil
		},
		func() (Provider, error) {
			return &fakeProvider{
				id:    "sales",
				tools: []ToolDefinition{echoTool("sales_tool")},
				ctrl:  pingModule("sales-module", new(int)),
			}, nil
		},
	)

	host := (&HostConfig{Modules: modules}).Complete().New()
	_, root := newTestRouter()
	require.NoError(t, host.Bootstrap(context.Background(), root))

	var names []string
	for _, d := range host.Tools() {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"inv_tool_one", "inv_tool_two", "sales_tool"}, names)
	assert.Equal(t, 1, host.BoundControllers())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "Unstarted", PhaseUnstarted.String())
	assert.Equal(t, "Ready", PhaseReady.String())
	assert.Equal(t, "Phase(99)", Phase(99).String())
}
