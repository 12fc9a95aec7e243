package component

import (
	"slashkit/internal/core/domain"
)

// NormalizeRows shapes arbitrary component input into the canonical row
// sequence of an outgoing payload. A bare component becomes a single-element
// row, a []Component becomes one row holding the whole sequence, and an
// existing row passes through unchanged.
//
// Calling with no arguments returns a nil slice, which tells the sender to
// omit the components field entirely; spreading an empty non-nil slice
// returns an empty row sequence, which clears the components of an edited
// message.
func NormalizeRows(items ...any) ([]*ActionRow, error) {
	if items == nil {
		return nil, nil
	}

	rows := make([]*ActionRow, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case *ActionRow:
			rows = append(rows, v)
		case []Component:
			rows = append(rows, NewActionRow(v...))
		case Component:
			rows = append(rows, NewActionRow(v))
		default:
			return nil, domain.NewTypeMismatchError(item, "ActionRow, Component or []Component")
		}
	}

	return rows, nil
}
