package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/yndnr/minidb-go/internal/core/domain"
)

// ErrMalformed marks snapshot content that cannot be decoded into a state.
var ErrMalformed = errors.New("snapshot: malformed content")

// Encode serializes state as indented JSON with a trailing newline.
func Encode(state domain.State) ([]byte, error) {
	if state == nil {
		state = domain.NewState()
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(state); err != nil {
		return nil, fmt.Errorf("snapshot: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses snapshot content. Anything other than a single JSON object
// of record arrays fails with an error wrapping ErrMalformed.
func Decode(data []byte) (domain.State, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrMalformed)
	}

	var state domain.State
	if err := json.Unmarshal(trimmed, &state); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	for name, records := range state {
		if records == nil {
			state[name] = []domain.Record{}
		}
	}
	return state, nil
}
