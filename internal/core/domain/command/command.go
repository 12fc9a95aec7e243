package command

import (
	"unicode/utf8"

	"slashkit/internal/core/domain"
)

// CommandType distinguishes slash commands from context menu entries.
type CommandType int

const (
	CommandTypeChatInput CommandType = iota + 1
	CommandTypeUser
	CommandTypeMessage
)

// Command is the payload describing an application command. Slash commands
// need a description; context menu commands take neither a description nor
// options.
type Command struct {
	Type              CommandType `json:"type"`
	Name              string      `json:"name"`
	Description       string      `json:"description,omitempty"`
	Options           []*Option   `json:"options,omitempty"`
	DefaultPermission bool        `json:"default_permission"`
}

// CommandParams names the constructor fields. A zero Type defaults to
// CommandTypeChatInput; a nil DefaultPermission defaults to true.
type CommandParams struct {
	Type              CommandType
	Name              string
	Description       string
	Options           []*Option
	DefaultPermission *bool
}

func NewCommand(params CommandParams) (*Command, error) {
	command := &Command{
		Type:        params.Type,
		Name:        params.Name,
		Description: params.Description,
		Options:     params.Options,
	}

	if command.Type == 0 {
		command.Type = CommandTypeChatInput
	}
	command.DefaultPermission = params.DefaultPermission == nil || *params.DefaultPermission

	if err := command.validate(); err != nil {
		return nil, err
	}

	return command, nil
}

func (c *Command) validate() error {
	if c.Type < CommandTypeChatInput || c.Type > CommandTypeMessage {
		return domain.NewValidationError("command type %d is out of range", int(c.Type))
	}

	if !namePattern.MatchString(c.Name) {
		return domain.NewValidationError("command name %q must match %s", c.Name, namePattern)
	}

	if c.Type == CommandTypeChatInput {
		if length := utf8.RuneCountInString(c.Description); length == 0 || length > 100 {
			return domain.NewValidationError("slash command description must be between 1 and 100 characters")
		}
		return nil
	}

	if c.Description != "" {
		return domain.NewValidationError("context menu commands take no description")
	}
	if len(c.Options) > 0 {
		return domain.NewValidationError("context menu commands take no options")
	}

	return nil
}
