package utils

import "fmt"

// EnumValidator restricts a string field to a closed value set. The estado
// column is the one consumer; "" is a legal member there (no state yet).
func EnumValidator(allowed ...string) func(string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return fmt.Errorf("value %q is not one of %v", s, allowed)
	}
}
