package renda

import (
	"encoding/json"
	"fmt"
	"io"
)

// DecodeComparisonInput reads one ComparisonInput from JSON. A malformed
// document aborts with a descriptive error; it is never partially applied.
func DecodeComparisonInput(r io.Reader) (*ComparisonInput, error) {
	var in ComparisonInput
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return nil, fmt.Errorf("invalid comparison input: %w", err)
	}
	return &in, nil
}

// EncodeComparisonResult writes the result as indented JSON, the flat
// structured record the presentation layer consumes.
func EncodeComparisonResult(w io.Writer, r *ComparisonResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding comparison result: %w", err)
	}
	return nil
}
