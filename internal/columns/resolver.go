// Package columns maps the human-language header variants found in the
// department's spreadsheets onto canonical field names.
package columns

import (
	"fmt"
	"strings"
)

// Field is one canonical field and the header spellings accepted for it.
type Field struct {
	Name    string   `json:"field"`
	Aliases []string `json:"aliases"`
}

// AliasSet is an ordered list of fields. Slice order is the priority order
// used when several unresolved fields match the same header.
type AliasSet struct {
	Name   string
	Fields []Field
}

// Resolve maps canonical field names to 0-based source column indexes.
// Columns are visited in sheet order; each column binds to at most one
// field, and the left-most matching column wins for any field with several
// textual matches. Matching is exact on the trimmed header, never substring.
func Resolve(headers []string, set AliasSet) map[string]int {
	resolved := make(map[string]int)
	for col, header := range headers {
		h := strings.TrimSpace(header)
		if h == "" {
			continue
		}
		for _, field := range set.Fields {
			if _, done := resolved[field.Name]; done {
				continue
			}
			if matches(field, h) {
				resolved[field.Name] = col
				break
			}
		}
	}
	return resolved
}

func matches(f Field, trimmedHeader string) bool {
	for _, alias := range f.Aliases {
		if strings.TrimSpace(alias) == trimmedHeader {
			return true
		}
	}
	return false
}

// Missing returns the required field names absent from a resolution.
func Missing(resolved map[string]int, required []string) []string {
	var missing []string
	for _, name := range required {
		if _, ok := resolved[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// ErrMissingColumns reports required fields that no header matched. It
// carries the raw header list so a caller can offer a manual mapping.
type ErrMissingColumns struct {
	SetName string
	Missing []string
	Headers []string
}

func (e *ErrMissingColumns) Error() string {
	return fmt.Sprintf("alias set %q: no column found for %s", e.SetName, strings.Join(e.Missing, ", "))
}
