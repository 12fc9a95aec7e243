package component

import (
	"encoding/json"
	"fmt"

	"slashkit/internal/core/domain"
)

// TextInputStyle selects between a single-line and a multi-line input.
type TextInputStyle int

const (
	TextInputStyleShort TextInputStyle = iota + 1
	TextInputStyleParagraph
)

// TextInput is a free-form input field for modals.
type TextInput struct {
	customID    string
	style       TextInputStyle
	label       string
	minLength   *int
	maxLength   *int
	required    bool
	value       string
	placeholder string
}

// TextInputParams names the constructor fields. A zero Style defaults to
// TextInputStyleShort; CustomID is generated when left empty. Inputs are
// required unless marked Optional.
type TextInputParams struct {
	CustomID    string
	Style       TextInputStyle
	Label       string
	MinLength   *int
	MaxLength   *int
	Optional    bool
	Value       string
	Placeholder string
}

func NewTextInput(params TextInputParams) (*TextInput, error) {
	input := &TextInput{
		customID:    params.CustomID,
		style:       params.Style,
		label:       params.Label,
		minLength:   params.MinLength,
		maxLength:   params.MaxLength,
		required:    !params.Optional,
		value:       params.Value,
		placeholder: params.Placeholder,
	}

	if input.style == 0 {
		input.style = TextInputStyleShort
	}

	if input.customID == "" {
		id, err := newCustomID()
		if err != nil {
			return nil, err
		}
		input.customID = id
	}

	if err := input.validate(); err != nil {
		return nil, err
	}

	return input, nil
}

func (t *TextInput) validate() error {
	if t.style < TextInputStyleShort || t.style > TextInputStyleParagraph {
		return domain.NewValidationError("text input style must be %d (short) or %d (paragraph)",
			TextInputStyleShort, TextInputStyleParagraph)
	}

	return nil
}

func (t *TextInput) Type() Type { return TypeTextInput }

func (t *TextInput) component() {}

func (t *TextInput) CustomID() string      { return t.customID }
func (t *TextInput) Style() TextInputStyle { return t.style }
func (t *TextInput) Label() string         { return t.label }
func (t *TextInput) MinLength() *int       { return t.minLength }
func (t *TextInput) MaxLength() *int       { return t.maxLength }
func (t *TextInput) Required() bool        { return t.required }
func (t *TextInput) Value() string         { return t.value }
func (t *TextInput) Placeholder() string   { return t.placeholder }

func (t *TextInput) SetStyle(style TextInputStyle) error {
	next := *t
	next.style = style

	if err := next.validate(); err != nil {
		return err
	}

	*t = next
	return nil
}

func (t *TextInput) SetCustomID(customID string)       { t.customID = customID }
func (t *TextInput) SetLabel(label string)             { t.label = label }
func (t *TextInput) SetMinLength(minLength *int)       { t.minLength = minLength }
func (t *TextInput) SetMaxLength(maxLength *int)       { t.maxLength = maxLength }
func (t *TextInput) SetRequired(required bool)         { t.required = required }
func (t *TextInput) SetValue(value string)             { t.value = value }
func (t *TextInput) SetPlaceholder(placeholder string) { t.placeholder = placeholder }

type textInputWire struct {
	Type        Type           `json:"type"`
	CustomID    string         `json:"custom_id"`
	Style       TextInputStyle `json:"style"`
	Label       *string        `json:"label"`
	MinLength   *int           `json:"min_length"`
	MaxLength   *int           `json:"max_length"`
	Required    *bool          `json:"required"`
	Value       *string        `json:"value"`
	Placeholder *string        `json:"placeholder"`
}

func (t *TextInput) MarshalJSON() ([]byte, error) {
	wire := textInputWire{
		Type:      TypeTextInput,
		CustomID:  t.customID,
		Style:     t.style,
		MinLength: t.minLength,
		MaxLength: t.maxLength,
		Required:  &t.required,
	}
	if t.label != "" {
		wire.Label = &t.label
	}
	if t.value != "" {
		wire.Value = &t.value
	}
	if t.placeholder != "" {
		wire.Placeholder = &t.placeholder
	}

	return json.Marshal(wire)
}

// UnmarshalJSON rebuilds a text input from wire data. A missing custom id is
// generated and a missing required flag falls back to true, matching the
// construction defaults.
func (t *TextInput) UnmarshalJSON(data []byte) error {
	var wire textInputWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("decoding text input: %w", err)
	}

	input := TextInput{
		customID:  wire.CustomID,
		style:     wire.Style,
		minLength: wire.MinLength,
		maxLength: wire.MaxLength,
		required:  true,
	}
	if wire.Label != nil {
		input.label = *wire.Label
	}
	if wire.Required != nil {
		input.required = *wire.Required
	}
	if wire.Value != nil {
		input.value = *wire.Value
	}
	if wire.Placeholder != nil {
		input.placeholder = *wire.Placeholder
	}

	if input.customID == "" {
		id, err := newCustomID()
		if err != nil {
			return err
		}
		input.customID = id
	}

	if err := input.validate(); err != nil {
		return err
	}

	*t = input
	return nil
}
