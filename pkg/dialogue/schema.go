package dialogue

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// ScriptSchema reflects the Script type into a self-contained JSON schema
// suitable for the model's structured-output format parameter. The schema is
// inlined (no $ref) because the upstream format field does not resolve
// references.
func ScriptSchema() json.RawMessage {
	r := &jsonschema.Reflector{
		DoNotReference:            true,
		AllowAdditionalProperties: false,
	}
	schema := r.Reflect(&Script{})
	schema.Version = ""

	data, err := json.Marshal(schema)
	if err != nil {
		// Reflecting a static struct cannot fail at runtime.
		panic(err)
	}
	return data
}
