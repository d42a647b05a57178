// Package jsonmap turns a JSON object into its key/value pairs in document order.
package jsonmap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrNotObject is returned when the input is valid JSON but not an object.
var ErrNotObject = errors.New("json value is not an object")

// Entry one key/value pair of an object.
type Entry struct {
	Key   string
	Value json.RawMessage
}

// Entries returns the members of the JSON object in data, in the order they
// appear. Duplicate keys are kept.
func Entries(data []byte) ([]Entry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%w, got: %v", ErrNotObject, tok)
	}

	entries := []Entry{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string, got: %v", tok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("failed to decode value of %q; error: %w", key, err)
		}
		entries = append(entries, Entry{Key: key, Value: value})
	}

	// '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errors.New("unexpected data after object")
		}
		return nil, err
	}

	return entries, nil
}
