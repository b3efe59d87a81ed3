// Package model holds the planner's plain records: subjects, tasks, weekly
// sessions and settings.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ID identifies a record within its collection. Stored documents may carry
// ids as JSON numbers; they are normalized to plain decimal text on decode (1e3 and 1000.0 both
// become "1000") so
// equality is always a plain string comparison.
type ID string

// NewID returns a fresh random identifier.
func NewID() ID {
	return ID(uuid.NewString())
}

func (id ID) String() string {
	return string(id)
}

// UnmarshalJSON accepts strings, numbers and null.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*id = ""
		return nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("model: id must be a string or number: %w", err)
	}
	text := n.String()
	if strings.ContainsAny(text, ".eE") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fmt.Errorf("model: id %s: %w", text, err)
		}
		text = strconv.FormatFloat(f, 'f', -1, 64)
	}
	*id = ID(text)
	return nil
}
