package shape

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
)

// ParseError describes a failure to decode a shape collection from JSON.
// It wraps the underlying decoder error so callers can surface a
// human-readable description while still unwrapping the cause.
type ParseError struct {
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse shapes: %v", e.Err)
}

// Unwrap returns the underlying decode error.
func (e *ParseError) Unwrap() error { return e.Err }

// Encode serializes a collection as a UTF-8 JSON array, one object per
// shape, in collection order. It fails only for values JSON cannot
// represent (NaN or infinite coordinates); for any well-formed collection
// it succeeds.
func Encode(c Collection) ([]byte, error) {
	if c == nil {
		// A nil collection is an empty drawing, not a null document.
		c = Collection{}
	}
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("serialize shapes: %w", err)
	}
	return data, nil
}

// Decode parses a JSON array of shape objects into a Collection.
//
// Decode is total over the schema: any element with a shape_type string
// decodes, whether or not the type is recognized, and optional fields may
// be absent or null. It returns a *ParseError when the input is not valid
// JSON, is not an array of objects (a top-level null included), a field
// has the wrong type, or an element is missing its shape_type
// discriminator.
func Decode(data []byte) (Collection, error) {
	var c Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, &ParseError{Err: err}
	}
	if c == nil {
		// A JSON null unmarshals into a nil slice without error.
		return nil, &ParseError{Err: errors.New("expected an array of shapes, got null")}
	}
	for i, s := range c {
		if s.Type == "" {
			return nil, &ParseError{Err: fmt.Errorf("shape %d: missing shape_type", i)}
		}
	}
	return c, nil
}
