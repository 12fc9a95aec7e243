// Package command models application command payloads: the command itself,
// its options, and their fixed choices. Registration and matching stay with
// the caller; this package only builds and validates the wire records.
package command

import (
	"regexp"
	"unicode/utf8"

	"slashkit/internal/core/domain"
)

// OptionType enumerates the argument kinds a slash command option can take.
type OptionType int

const (
	OptionSubCommand OptionType = iota + 1
	OptionSubCommandGroup
	OptionString
	OptionInteger
	OptionBoolean
	OptionUser
	OptionChannel
	OptionRole
	OptionMentionable
	OptionNumber
)

var namePattern = regexp.MustCompile(`^[\w-]{1,32}$`)

// Choice is a fixed value a user can pick for an option.
type Choice struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func NewChoice(name, value string) (*Choice, error) {
	if name == "" {
		return nil, domain.NewValidationError("choice name must not be empty")
	}

	return &Choice{Name: name, Value: value}, nil
}

// Option describes one argument of a slash command. Subcommand and group
// options nest further options instead of taking a value.
type Option struct {
	Type        OptionType `json:"type"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Required    bool       `json:"required"`
	Choices     []*Choice  `json:"choices,omitempty"`
	Options     []*Option  `json:"options,omitempty"`
}

// OptionParams names the constructor fields.
type OptionParams struct {
	Type        OptionType
	Name        string
	Description string
	Required    bool
	Choices     []*Choice
	Options     []*Option
}

func NewOption(params OptionParams) (*Option, error) {
	option := &Option{
		Type:        params.Type,
		Name:        params.Name,
		Description: params.Description,
		Required:    params.Required,
		Choices:     params.Choices,
		Options:     params.Options,
	}

	if err := option.validate(); err != nil {
		return nil, err
	}

	return option, nil
}

func (o *Option) validate() error {
	if o.Type < OptionSubCommand || o.Type > OptionNumber {
		return domain.NewValidationError("option type %d is out of range", int(o.Type))
	}

	if !namePattern.MatchString(o.Name) {
		return domain.NewValidationError("option name %q must match %s", o.Name, namePattern)
	}

	if length := utf8.RuneCountInString(o.Description); length == 0 || length > 100 {
		return domain.NewValidationError("option description must be between 1 and 100 characters")
	}

	if len(o.Choices) > 25 {
		return domain.NewValidationError("an option takes at most 25 choices")
	}

	if len(o.Options) > 0 && o.Type != OptionSubCommand && o.Type != OptionSubCommandGroup {
		return domain.NewValidationError("only subcommands and groups nest options")
	}

	return nil
}
