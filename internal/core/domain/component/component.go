// Package component models Discord message components as validated value
// objects with a bidirectional JSON wire mapping. Rows hold leaf components,
// modals hold rows; every invariant is checked at construction and on
// mutation, never deferred to serialization.
package component

import (
	"encoding/json"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"

	"slashkit/internal/core/domain"
)

// Type is the numeric component discriminant used on the wire.
type Type int

const (
	TypeActionRow Type = iota + 1
	TypeButton
	TypeSelect
	TypeTextInput
)

// Component is implemented by the four message component variants. The set is
// closed; the discriminant only appears in the wire mapping.
type Component interface {
	json.Marshaler
	Type() Type
	component()
}

var (
	_ Component = (*ActionRow)(nil)
	_ Component = (*Button)(nil)
	_ Component = (*Select)(nil)
	_ Component = (*TextInput)(nil)
)

// FromWire decodes a single component payload, dispatching on its type
// discriminant.
func FromWire(data []byte) (Component, error) {
	var probe struct {
		Type Type `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("decoding component type: %w", err)
	}

	switch probe.Type {
	case TypeActionRow:
		row := &ActionRow{}
		if err := json.Unmarshal(data, row); err != nil {
			return nil, err
		}
		return row, nil
	case TypeButton:
		button := &Button{}
		if err := json.Unmarshal(data, button); err != nil {
			return nil, err
		}
		return button, nil
	case TypeSelect:
		sel := &Select{}
		if err := json.Unmarshal(data, sel); err != nil {
			return nil, err
		}
		return sel, nil
	case TypeTextInput:
		input := &TextInput{}
		if err := json.Unmarshal(data, input); err != nil {
			return nil, err
		}
		return input, nil
	default:
		return nil, domain.NewValidationError("unknown component type %d", probe.Type)
	}
}

func newCustomID() (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", fmt.Errorf("generating custom id: %w", err)
	}

	log.Debug().Str("custom_id", id.String()).Msg("generated custom id")

	return id.String(), nil
}
