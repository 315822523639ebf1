// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import "fmt"

// Warnings collects the human-readable failures of optional export steps.
// The zero value is ready to use.
type Warnings struct {
	list []string
}

// Add records that step failed with err, as "<step> failed: <err>".
func (w *Warnings) Add(step string, err error) {
	w.list = append(w.list, fmt.Sprintf("%s failed: %v", step, err))
}

// Len returns the number of warnings recorded.
func (w *Warnings) Len() int { return len(w.list) }

// List returns a copy of the warnings. It is never nil so an export with no
// warnings serializes an empty list.
func (w *Warnings) List() []string {
	out := make([]string, len(w.list))
	copy(out, w.list)
	return out
}
