package component

import (
	"encoding/json"
	"fmt"

	"slashkit/internal/core/domain"
)

// SelectOption is a single choice inside a Select menu.
type SelectOption struct {
	label       string
	value       string
	emoji       *domain.Emoji
	description string
	isDefault   bool
}

// SelectOptionParams names the constructor fields. Label is the user-facing
// text and must not be empty; Value is what the bot receives on selection.
type SelectOptionParams struct {
	Label       string
	Value       string
	Emoji       *domain.Emoji
	Description string
	Default     bool
}

func NewSelectOption(params SelectOptionParams) (*SelectOption, error) {
	option := &SelectOption{
		label:       params.Label,
		value:       params.Value,
		emoji:       params.Emoji,
		description: params.Description,
		isDefault:   params.Default,
	}

	if err := option.validate(); err != nil {
		return nil, err
	}

	return option, nil
}

func (o *SelectOption) validate() error {
	if o.label == "" {
		return domain.NewValidationError("option label must not be empty")
	}

	return nil
}

func (o *SelectOption) Label() string        { return o.label }
func (o *SelectOption) Value() string        { return o.value }
func (o *SelectOption) Emoji() *domain.Emoji { return o.emoji }
func (o *SelectOption) Description() string  { return o.description }
func (o *SelectOption) Default() bool        { return o.isDefault }

func (o *SelectOption) SetLabel(label string) error {
	next := *o
	next.label = label

	if err := next.validate(); err != nil {
		return err
	}

	*o = next
	return nil
}

func (o *SelectOption) SetValue(value string)             { o.value = value }
func (o *SelectOption) SetEmoji(emoji *domain.Emoji)      { o.emoji = emoji }
func (o *SelectOption) SetDescription(description string) { o.description = description }
func (o *SelectOption) SetDefault(isDefault bool)         { o.isDefault = isDefault }

type selectOptionWire struct {
	Label       string        `json:"label"`
	Value       string        `json:"value"`
	Description *string       `json:"description"`
	Default     bool          `json:"default"`
	Emoji       *domain.Emoji `json:"emoji,omitempty"`
}

// MarshalJSON emits the option record. Options carry no type discriminant.
func (o *SelectOption) MarshalJSON() ([]byte, error) {
	wire := selectOptionWire{
		Label:   o.label,
		Value:   o.value,
		Default: o.isDefault,
	}
	if o.description != "" {
		wire.Description = &o.description
	}
	wire.Emoji = o.emoji

	return json.Marshal(wire)
}

func (o *SelectOption) UnmarshalJSON(data []byte) error {
	var wire selectOptionWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("decoding select option: %w", err)
	}

	option := SelectOption{
		label:     wire.Label,
		value:     wire.Value,
		emoji:     wire.Emoji,
		isDefault: wire.Default,
	}
	if wire.Description != nil {
		option.description = *wire.Description
	}

	if err := option.validate(); err != nil {
		return err
	}

	*o = option
	return nil
}

// Select is a dropdown menu component. It must sit alone in its row.
type Select struct {
	customID    string
	options     []*SelectOption
	placeholder string
	minValues   int
	maxValues   int
	disabled    bool
}

// SelectParams names the constructor fields. CustomID is generated when left
// empty. MinValues and MaxValues default to 1 when zero.
type SelectParams struct {
	CustomID    string
	Options     []*SelectOption
	Placeholder string
	MinValues   int
	MaxValues   int
	Disabled    bool
}

func NewSelect(params SelectParams) (*Select, error) {
	sel := &Select{
		customID:    params.CustomID,
		options:     params.Options,
		placeholder: params.Placeholder,
		minValues:   params.MinValues,
		maxValues:   params.MaxValues,
		disabled:    params.Disabled,
	}

	if sel.minValues == 0 {
		sel.minValues = 1
	}
	if sel.maxValues == 0 {
		sel.maxValues = 1
	}

	if sel.customID == "" {
		id, err := newCustomID()
		if err != nil {
			return nil, err
		}
		sel.customID = id
	}

	if err := sel.validate(); err != nil {
		return nil, err
	}

	return sel, nil
}

func (s *Select) validate() error {
	if len(s.options) == 0 || len(s.options) > 25 {
		return domain.NewValidationError("options length should be between 1 and 25")
	}

	return nil
}

func (s *Select) Type() Type { return TypeSelect }

func (s *Select) component() {}

func (s *Select) CustomID() string         { return s.customID }
func (s *Select) Options() []*SelectOption { return s.options }
func (s *Select) Placeholder() string      { return s.placeholder }
func (s *Select) MinValues() int           { return s.minValues }
func (s *Select) MaxValues() int           { return s.maxValues }
func (s *Select) Disabled() bool           { return s.disabled }

// SetOptions replaces the options, revalidating the length bound. The select
// is left unchanged on error.
func (s *Select) SetOptions(options []*SelectOption) error {
	next := *s
	next.options = options

	if err := next.validate(); err != nil {
		return err
	}

	*s = next
	return nil
}

func (s *Select) SetCustomID(customID string)       { s.customID = customID }
func (s *Select) SetPlaceholder(placeholder string) { s.placeholder = placeholder }
func (s *Select) SetMinValues(minValues int)        { s.minValues = minValues }
func (s *Select) SetMaxValues(maxValues int)        { s.maxValues = maxValues }
func (s *Select) SetDisabled(disabled bool)         { s.disabled = disabled }

type selectWire struct {
	Type        Type            `json:"type"`
	Options     []*SelectOption `json:"options"`
	CustomID    string          `json:"custom_id"`
	Placeholder *string         `json:"placeholder"`
	MinValues   *int            `json:"min_values"`
	MaxValues   *int            `json:"max_values"`
	Disabled    bool            `json:"disabled"`
}

func (s *Select) MarshalJSON() ([]byte, error) {
	wire := selectWire{
		Type:      TypeSelect,
		Options:   s.options,
		CustomID:  s.customID,
		MinValues: &s.minValues,
		MaxValues: &s.maxValues,
		Disabled:  s.disabled,
	}
	if s.placeholder != "" {
		wire.Placeholder = &s.placeholder
	}

	return json.Marshal(wire)
}

// UnmarshalJSON rebuilds a select from wire data. A missing custom id is
// generated; missing min and max values fall back to 1, explicit zeroes are
// carried verbatim.
func (s *Select) UnmarshalJSON(data []byte) error {
	var wire selectWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("decoding select: %w", err)
	}

	sel := Select{
		customID:  wire.CustomID,
		options:   wire.Options,
		minValues: 1,
		maxValues: 1,
		disabled:  wire.Disabled,
	}
	if wire.Placeholder != nil {
		sel.placeholder = *wire.Placeholder
	}
	if wire.MinValues != nil {
		sel.minValues = *wire.MinValues
	}
	if wire.MaxValues != nil {
		sel.maxValues = *wire.MaxValues
	}

	if sel.customID == "" {
		id, err := newCustomID()
		if err != nil {
			return err
		}
		sel.customID = id
	}

	if err := sel.validate(); err != nil {
		return err
	}

	*s = sel
	return nil
}
