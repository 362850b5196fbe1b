package columns

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Persisted alias sets are stored as a JSON array so the field priority
// order survives the round trip. The payload is validated on both load and
// save: a corrupted settings row must surface as a clear error, not as an
// importer that silently matches nothing.
const aliasSchemaJSON = `{
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "field": {"type": "string", "minLength": 1},
      "aliases": {
        "type": "array",
        "items": {"type": "string", "minLength": 1},
        "minItems": 1
      }
    },
    "required": ["field", "aliases"],
    "additionalProperties": false
  }
}`

var aliasSchema = jsonschema.MustCompileString("aliases.json", aliasSchemaJSON)

// MarshalAliases serializes an alias set's fields for the settings store.
func MarshalAliases(set AliasSet) (string, error) {
	b, err := json.Marshal(set.Fields)
	if err != nil {
		return "", err
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return "", err
	}
	if err := aliasSchema.Validate(v); err != nil {
		return "", fmt.Errorf("alias set %q: %w", set.Name, err)
	}
	return string(b), nil
}

// UnmarshalAliases parses a persisted alias-set payload.
func UnmarshalAliases(name, payload string) (AliasSet, error) {
	set := AliasSet{Name: name}
	if strings.TrimSpace(payload) == "" {
		return set, fmt.Errorf("alias set %q: empty payload", name)
	}
	var v any
	if err := json.Unmarshal([]byte(payload), &v); err != nil {
		return set, fmt.Errorf("alias set %q: %w", name, err)
	}
	if err := aliasSchema.Validate(v); err != nil {
		return set, fmt.Errorf("alias set %q: %w", name, err)
	}
	if err := json.Unmarshal([]byte(payload), &set.Fields); err != nil {
		return set, fmt.Errorf("alias set %q: %w", name, err)
	}
	return set, nil
}
