package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// LooseID is an id sent either as a JSON number or as a numeric string.
// Values that are neither still decode, so the caller can tell a
// malformed id apart from a missing one.
type LooseID struct {
	value uint
	blank bool
	valid bool
}

func (id *LooseID) UnmarshalJSON(data []byte) error {
	*id = LooseID{}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	var text string
	switch v := raw.(type) {
	case nil:
		id.blank = true
		return nil
	case json.Number:
		text = v.String()
	case string:
		if v == "" {
			id.blank = true
			return nil
		}
		text = v
	default:
		return nil
	}

	n, err := strconv.ParseUint(text, 10, strconv.IntSize)
	if err != nil {
		return nil
	}
	id.value, id.valid = uint(n), true
	return nil
}

// Value returns the id with two flags. present is false when the field was
// omitted, null or "". ok is false when the value is not a number.
func (id *LooseID) Value() (v uint, present, ok bool) {
	if id == nil || id.blank {
		return 0, false, false
	}
	return id.value, true, id.valid
}
