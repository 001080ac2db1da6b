// Package json selects the JSON implementation for the whole project.
// All packages marshal through this facade instead of encoding/json.
package json

import (
	"github.com/bytedance/sonic"
)

var (
	// Marshal serializes v into JSON bytes.
	Marshal = sonic.Marshal
	// Unmarshal deserializes JSON bytes into v.
	Unmarshal = sonic.Unmarshal
	// MarshalString serializes v into a JSON string.
	MarshalString = sonic.MarshalString
	// UnmarshalString deserializes a JSON string into v.
	UnmarshalString = sonic.UnmarshalString
)
