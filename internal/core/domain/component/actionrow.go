package component

import (
	"encoding/json"
	"fmt"

	"slashkit/internal/core/domain"
)

// ActionRow groups up to five leaf components into one horizontal row. Rows
// do not enforce homogeneity at construction; Discord's wire format implies
// it, and reconstruction relies on it.
type ActionRow struct {
	components []Component
}

// NewActionRow builds a row over a copy of the given components.
func NewActionRow(components ...Component) *ActionRow {
	return &ActionRow{components: append([]Component(nil), components...)}
}

func (r *ActionRow) Type() Type { return TypeActionRow }

func (r *ActionRow) component() {}

func (r *ActionRow) Len() int { return len(r.components) }

// Get returns the component at index. Out-of-range indexes panic, as with any
// slice access; the same goes for Set and Delete.
func (r *ActionRow) Get(index int) Component { return r.components[index] }

func (r *ActionRow) Set(index int, component Component) { r.components[index] = component }

// Delete removes the component at index, preserving order.
func (r *ActionRow) Delete(index int) {
	r.components = append(r.components[:index], r.components[index+1:]...)
}

func (r *ActionRow) Append(component Component) {
	r.components = append(r.components, component)
}

func (r *ActionRow) Components() []Component { return r.components }

func (r *ActionRow) SetComponents(components []Component) { r.components = components }

// DisableComponents disables every contained component that supports
// disabling, leaves the rest untouched, and returns the row for chaining.
func (r *ActionRow) DisableComponents() *ActionRow {
	for _, c := range r.components {
		if leaf, ok := c.(interface{ SetDisabled(bool) }); ok {
			leaf.SetDisabled(true)
		}
	}

	return r
}

func (r *ActionRow) MarshalJSON() ([]byte, error) {
	components := r.components
	if components == nil {
		components = []Component{}
	}

	return json.Marshal(struct {
		Type       Type        `json:"type"`
		Components []Component `json:"components"`
	}{Type: TypeActionRow, Components: components})
}

// UnmarshalJSON rebuilds a row from wire data. A row is reconstructible only
// when every child record carries the same leaf discriminant; mixed payloads
// fail instead of decoding to something unusable.
func (r *ActionRow) UnmarshalJSON(data []byte) error {
	var wire struct {
		Components []json.RawMessage `json:"components"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("decoding action row: %w", err)
	}

	if len(wire.Components) == 0 {
		r.components = nil
		return nil
	}

	kinds := make([]Type, len(wire.Components))
	for i, raw := range wire.Components {
		var probe struct {
			Type Type `json:"type"`
		}
		if err := json.Unmarshal(raw, &probe); err != nil {
			return fmt.Errorf("decoding row child type: %w", err)
		}
		kinds[i] = probe.Type
	}

	components := make([]Component, 0, len(wire.Components))
	for i, raw := range wire.Components {
		if kinds[i] != kinds[0] {
			return domain.NewValidationError("row mixes component types %d and %d", kinds[0], kinds[i])
		}

		var (
			child Component
			err   error
		)
		switch kinds[i] {
		case TypeButton:
			button := &Button{}
			err = json.Unmarshal(raw, button)
			child = button
		case TypeSelect:
			sel := &Select{}
			err = json.Unmarshal(raw, sel)
			child = sel
		case TypeTextInput:
			input := &TextInput{}
			err = json.Unmarshal(raw, input)
			child = input
		default:
			return domain.NewValidationError("row child has unsupported component type %d", kinds[i])
		}
		if err != nil {
			return err
		}

		components = append(components, child)
	}

	r.components = components
	return nil
}
