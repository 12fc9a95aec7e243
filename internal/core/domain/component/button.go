package component

import (
	"encoding/json"
	"fmt"

	"slashkit/internal/core/domain"
)

// ButtonStyle determines the rendering and behavior of a Button.
type ButtonStyle int

const (
	ButtonStylePrimary ButtonStyle = iota + 1
	ButtonStyleSecondary
	ButtonStyleSuccess
	ButtonStyleDanger
	ButtonStyleLink
)

// Color aliases for the canonical styles, as the Discord client renders them.
const (
	ButtonStyleBlue  = ButtonStylePrimary
	ButtonStyleGray  = ButtonStyleSecondary
	ButtonStyleGrey  = ButtonStyleSecondary
	ButtonStyleGreen = ButtonStyleSuccess
	ButtonStyleRed   = ButtonStyleDanger
	ButtonStyleURL   = ButtonStyleLink
)

// Button is a clickable message component. Non-link buttons correlate click
// interactions through their custom id; link buttons navigate to a URL and
// carry no id. A button needs at least a label or an emoji.
type Button struct {
	style    ButtonStyle
	label    string
	emoji    *domain.Emoji
	customID string
	url      string
	disabled bool
}

// ButtonParams names the constructor fields. A zero Style defaults to
// ButtonStyleSecondary. CustomID is generated when left empty, except for
// link buttons, which must not carry one.
type ButtonParams struct {
	Style    ButtonStyle
	Label    string
	Emoji    *domain.Emoji
	CustomID string
	URL      string
	Disabled bool
}

func NewButton(params ButtonParams) (*Button, error) {
	button := &Button{
		style:    params.Style,
		label:    params.Label,
		emoji:    params.Emoji,
		customID: params.CustomID,
		url:      params.URL,
		disabled: params.Disabled,
	}

	if button.style == 0 {
		button.style = ButtonStyleSecondary
	}

	if button.style != ButtonStyleLink && button.customID == "" {
		id, err := newCustomID()
		if err != nil {
			return nil, err
		}
		button.customID = id
	}

	if err := button.validate(); err != nil {
		return nil, err
	}

	return button, nil
}

func (b *Button) validate() error {
	if b.style < ButtonStylePrimary || b.style > ButtonStyleLink {
		return domain.NewValidationError("style must be between %d and %d", ButtonStylePrimary, ButtonStyleLink)
	}

	if b.label == "" && b.emoji == nil {
		return domain.NewValidationError("a button needs at least a label or an emoji")
	}

	if b.style == ButtonStyleLink {
		if b.customID != "" {
			return domain.NewValidationError("a link button uses a url instead of a custom id")
		}
		if b.url == "" {
			return domain.NewValidationError("a link button needs a url")
		}
		return nil
	}

	if b.url != "" {
		return domain.NewValidationError("button style is not link, a url must not be set")
	}
	if b.customID == "" {
		return domain.NewValidationError("a non-link button needs a custom id")
	}

	return nil
}

func (b *Button) Type() Type { return TypeButton }

func (b *Button) component() {}

func (b *Button) Style() ButtonStyle   { return b.style }
func (b *Button) Label() string        { return b.label }
func (b *Button) Emoji() *domain.Emoji { return b.emoji }
func (b *Button) CustomID() string     { return b.customID }
func (b *Button) URL() string          { return b.url }
func (b *Button) Disabled() bool       { return b.disabled }

// SetStyle changes the style, revalidating the custom id and url rules. The
// button is left unchanged on error.
func (b *Button) SetStyle(style ButtonStyle) error {
	next := *b
	next.style = style

	if err := next.validate(); err != nil {
		return err
	}

	*b = next
	return nil
}

func (b *Button) SetLabel(label string) error {
	next := *b
	next.label = label

	if err := next.validate(); err != nil {
		return err
	}

	*b = next
	return nil
}

func (b *Button) SetEmoji(emoji *domain.Emoji) error {
	next := *b
	next.emoji = emoji

	if err := next.validate(); err != nil {
		return err
	}

	*b = next
	return nil
}

func (b *Button) SetCustomID(customID string) error {
	next := *b
	next.customID = customID

	if err := next.validate(); err != nil {
		return err
	}

	*b = next
	return nil
}

func (b *Button) SetURL(url string) error {
	next := *b
	next.url = url

	if err := next.validate(); err != nil {
		return err
	}

	*b = next
	return nil
}

func (b *Button) SetDisabled(disabled bool) {
	b.disabled = disabled
}

type buttonWire struct {
	Type     Type          `json:"type"`
	Style    ButtonStyle   `json:"style"`
	Label    *string       `json:"label"`
	CustomID *string       `json:"custom_id"`
	URL      *string       `json:"url"`
	Disabled bool          `json:"disabled"`
	Emoji    *domain.Emoji `json:"emoji,omitempty"`
}

// MarshalJSON emits the documented wire shape. Absent optional fields are sent
// as explicit nulls; the url key carries a value only for link buttons.
func (b *Button) MarshalJSON() ([]byte, error) {
	wire := buttonWire{
		Type:     TypeButton,
		Style:    b.style,
		Disabled: b.disabled,
		Emoji:    b.emoji,
	}
	if b.label != "" {
		wire.Label = &b.label
	}
	if b.customID != "" {
		wire.CustomID = &b.customID
	}
	if b.style == ButtonStyleLink {
		wire.URL = &b.url
	}

	return json.Marshal(wire)
}

// UnmarshalJSON rebuilds a button from wire data, generating a custom id when
// the payload has none, and runs full validation.
func (b *Button) UnmarshalJSON(data []byte) error {
	var wire buttonWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("decoding button: %w", err)
	}

	button := Button{
		style:    wire.Style,
		disabled: wire.Disabled,
		emoji:    wire.Emoji,
	}
	if wire.Label != nil {
		button.label = *wire.Label
	}
	if wire.CustomID != nil {
		button.customID = *wire.CustomID
	}
	if wire.URL != nil {
		button.url = *wire.URL
	}

	if button.style != ButtonStyleLink && button.customID == "" {
		id, err := newCustomID()
		if err != nil {
			return err
		}
		button.customID = id
	}

	if err := button.validate(); err != nil {
		return err
	}

	*b = button
	return nil
}
