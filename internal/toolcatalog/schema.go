package toolcatalog

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// niladicArgs is the (empty) parameter shape shared by every fixed-command
// tool: no properties, nothing for the model to fill in.
type niladicArgs struct{}

// pathArgs is the parameter shape of the one path-parameterized tool.
type pathArgs struct {
	Path string `json:"path,omitempty" jsonschema:"description=Relative path, resolved against the gateway's working directory. Defaults to the current directory when omitted."`
}

var reflector = &jsonschema.Reflector{
	DoNotReference:            true,
	AllowAdditionalProperties: false,
}

// schemaFor reflects a Go struct into the JSON Schema fragment a
// ToolDescriptor publishes as its Parameters, rather than hand-writing the
// equivalent map[string]any literal once per tool.
func schemaFor(v any) map[string]any {
	schema := reflector.Reflect(v)
	raw, err := json.Marshal(schema)
	if err != nil {
		// Reflection of a local, known-good struct cannot fail; a panic
		// here would mean a programming error in this package.
		panic("toolcatalog: reflecting parameter schema: " + err.Error())
	}

	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		panic("toolcatalog: decoding parameter schema: " + err.Error())
	}
	// Strip reflector bookkeeping fields the model has no use for.
	delete(out, "$schema")
	delete(out, "$id")
	return out
}

var (
	niladicSchema = schemaFor(niladicArgs{})
	pathSchema    = schemaFor(pathArgs{})
)
