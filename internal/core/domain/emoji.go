package domain

import (
	"encoding/json"
	"fmt"
)

// Emoji is the normalized emoji descriptor attached to buttons and select
// options. Unicode emoji carry only a name; custom guild emoji add the
// snowflake ID and the animated flag.
type Emoji struct {
	Name     string
	ID       int64
	Animated bool
}

// UnicodeEmoji builds an Emoji from a plain unicode character.
func UnicodeEmoji(name string) *Emoji {
	return &Emoji{Name: name}
}

// CustomEmoji builds an Emoji for a custom guild emoji.
func CustomEmoji(name string, id int64, animated bool) *Emoji {
	return &Emoji{Name: name, ID: id, Animated: animated}
}

// NormalizeEmoji converts the accepted emoji inputs into canonical form: an
// Emoji or *Emoji passes through, a string becomes a unicode emoji, nil stays
// nil. Anything else fails with a TypeMismatchError.
func NormalizeEmoji(v any) (*Emoji, error) {
	switch emoji := v.(type) {
	case nil:
		return nil, nil
	case *Emoji:
		return emoji, nil
	case Emoji:
		return &emoji, nil
	case string:
		return UnicodeEmoji(emoji), nil
	default:
		return nil, NewTypeMismatchError(v, "Emoji, *Emoji or string")
	}
}

type emojiWire struct {
	Name     string `json:"name"`
	ID       *int64 `json:"id"`
	Animated *bool  `json:"animated,omitempty"`
}

// MarshalJSON emits the partial emoji record. Unicode emoji send an explicit
// null id and no animated key.
func (e *Emoji) MarshalJSON() ([]byte, error) {
	wire := emojiWire{Name: e.Name}
	if e.ID != 0 {
		wire.ID = &e.ID
		wire.Animated = &e.Animated
	}

	return json.Marshal(wire)
}

func (e *Emoji) UnmarshalJSON(data []byte) error {
	var wire emojiWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("decoding emoji: %w", err)
	}

	if wire.Name == "" {
		return NewValidationError("emoji is missing a name")
	}

	e.Name = wire.Name
	e.ID = 0
	e.Animated = false
	if wire.ID != nil {
		e.ID = *wire.ID
	}
	if wire.Animated != nil {
		e.Animated = *wire.Animated
	}

	return nil
}
