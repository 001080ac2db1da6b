package plugin

import (
	"context"
)

// ToolDefinition describes a tool operation exposed by a provider.
type ToolDefinition struct {
	// Name is the tool's unique name. (e.g. "sales_by_store")
	Name string
	// Description is a brief description of the tool's purpose.
	Description string
	// Parameters defines the input schema for the tool.
	Parameters []ParameterDef
	// Handler is the function that is called when the tool is invoked.
	Handler ToolHandler
}

// ParameterDef defines a single parameter for a tool.
type ParameterDef struct {
	// Name is the parameter's unique name. (e.g. "store")
	Name string
	// Type is the parameter's data type. (e.g. "string", "number", "boolean")
	Type string
	// Description is a brief description of the parameter's purpose.
	Description string
	// Required indicates whether the parameter is mandatory.
	Required bool
}

// ToolHandler is the function that is called when the tool is invoked.
// It receives the context and a map of parameter values, and returns the
// result or an error.
type ToolHandler func(ctx context.Context, params map[string]interface{}) (interface{}, error)

// ToolDescriptor is the derived (provider id, operation name, definition)
// triple produced by flattening every provider's tools. It is a pure
// projection of registry state, never stored.
type ToolDescriptor struct {
	// ProviderID is the id of the provider owning the operation.
	ProviderID string
	// Name is the operation name, equal to Definition.Name.
	Name string
	// Definition carries the operation metadata and handler.
	Definition ToolDefinition
}

// ToolTransport is the outward-facing registration surface of the
// protocol layer. The composer installs the aggregated tool set through
// it; this is the only point where tools become externally callable.
type ToolTransport interface {
	RegisterTool(d ToolDescriptor)
}
