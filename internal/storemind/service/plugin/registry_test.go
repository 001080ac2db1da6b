package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryKeepsInsertionOrder(t *testing.T) {
	r := NewRegistry()

	for _, id := range []string{"gamma", "alpha", "beta"} {
		require.True(t, r.Register(&fakeProvider{id: id}))
	}

	var got []string
	for _, p := range r.List() {
		got = append(got, p.Metadata().ID)
	}
	assert.Equal(t, []string{"gamma", "alpha", "beta"}, got)
	assert.Equal(t, 3, r.Len())
}

func TestRegistryRejectsDuplicateID(t *testing.T) {
	r := NewRegistry()

	first := &fakeProvider{id: "sales", name: "first"}
	second := &fakeProvider{id: "sales", name: "second"}

	require.True(t, r.Register(first))
	assert.False(t, r.Register(second))

	assert.Equal(t, 1, r.Len())
	got, ok := r.Get("sales")
	require.True(t, ok)
	assert.Equal(t, "first", got.Metadata().Name)
}

func TestRegistryRejectsEmptyID(t *testing.T) {
	r := NewRegistry()

	assert.False(t, r.Register(&fakeProvider{id: "", name: "anonymous"}))
	assert.Equal(t, 0, r.Len())
}

func TestAllToolOperationsOrder(t *testing.T) {
	r := NewRegistry()

	require.True(t, r.Register(&fakeProvider{
		id:    "sales",
		tools: []ToolDefinition{echoTool("sales_get_all"), echoTool("sales_by_store")},
	}))
	require.True(t, r.Register(&fakeProvider{id: "inventory"}))
	require.True(t, r.Register(&fakeProvider{
		id:    "forecast",
		tools: []ToolDefinition{echoTool("forecast_demand")},
	}))

	ops := r.AllToolOperations()
	require.Len(t, ops, 3)

	assert.Equal(t, "sales", ops[0].ProviderID)
	assert.Equal(t, "sales_get_all", ops[0].Name)
	assert.Equal(t, "sales_by_store", ops[1].Name)
	assert.Equal(t, "forecast", ops[2].ProviderID)
	assert.Equal(t, "forecast_demand", ops[2].Name)

	// Descriptor name always mirrors the definition name.
	for _, op := range ops {
		assert.Equal(t, op.Definition.Name, op.Name)
	}
}

func TestAllToolOperationsIsStableAcrossCalls(t *testing.T) {
	r := NewRegistry()

	require.True(t, r.Register(&fakeProvider{
		id:    "sales",
		tools: []ToolDefinition{echoTool("sales_get_all")},
	}))
	require.True(t, r.Register(&fakeProvider{
		id:    "forecast",
		tools: []ToolDefinition{echoTool("forecast_demand")},
	}))

	first := r.AllToolOperations()
	second := r.AllToolOperations()

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].ProviderID, second[i].ProviderID)
		assert.Equal(t, first[i].Name, second[i].Name)
	}
}

func TestRejectedDuplicateToolsNeverAppear(t *testing.T) {
	r := NewRegistry()

	require.True(t, r.Register(&fakeProvider{
		id:    "inv",
		tools: []ToolDefinition{echoTool("inv_tool")},
	}))
	require.True(t, r.Register(&fakeProvider{
		id:    "sales",
		tools: []ToolDefinition{echoTool("sales_tool")},
	}))
	assert.False(t, r.Register(&fakeProvider{
		id:    "inv",
		tools: []ToolDefinition{echoTool("impostor_tool")},
	}))

	assert.Equal(t, 2, r.Len())
	var names []string
	for _, op := range r.AllToolOperations() {
		names = append(names, op.Name)
	}
	assert.Equal(t, []string{"inv_tool", "sales_tool"}, names)
}

func TestAllToolOperationsEmptyRegistry(t *testing.T) {
	r := NewRegistry()
	assert.Empty(t, r.AllToolOperations())
}
