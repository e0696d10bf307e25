// ABOUTME: Persisted form of a Layout stored under the screen record's layout field
// ABOUTME: Decoding tolerates legacy records and normalizes them back to a consistent shape

package layout

import (
	"encoding/json"
	"fmt"

	"signage-app-api/core/domain"
)

// Encode serializes a layout for storage on its screen record
func Encode(l domain.Layout) ([]byte, error) {
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}
	return data, nil
}

// Decode parses a stored layout. Records written by older clients may carry an independent
// rightColumn.width or a content list that disagrees with sections; both are repaired.
func Decode(data []byte) (domain.Layout, error) {
	var l domain.Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return domain.Layout{}, fmt.Errorf("decode layout: %w", err)
	}
	return Normalize(l), nil
}
