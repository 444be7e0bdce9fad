package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ClassList is a list of class names. JSON input may be a native array or a
// single comma-separated string, the form used by text rosters.
type ClassList []string

// UnmarshalJSON accepts ["soldier","scout"], "soldier, scout" and null.
func (l *ClassList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	// Fast path: native array
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = trimClassNames(list)
		return nil
	}

	// Slow path: comma-separated string
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("flex unmarshal: class list must be an array or a string: %w", err)
	}
	*l = trimClassNames(strings.Split(s, ","))
	return nil
}

func trimClassNames(names []string) ClassList {
	if names == nil {
		return nil
	}
	out := make(ClassList, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}
