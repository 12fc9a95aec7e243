package component

import (
	"encoding/json"

	"slashkit/internal/core/domain"
)

// Modal is a popup form submitted as a single interaction. Modals are only
// ever sent; incoming submissions arrive as plain interaction payloads and
// are handled by the caller.
type Modal struct {
	customID string
	title    string
	rows     []*ActionRow
}

// ModalParams names the constructor fields. CustomID is generated when left
// empty. Rows holds between 1 and 5 rows of text inputs.
type ModalParams struct {
	CustomID string
	Title    string
	Rows     []*ActionRow
}

func NewModal(params ModalParams) (*Modal, error) {
	modal := &Modal{
		customID: params.CustomID,
		title:    params.Title,
		rows:     params.Rows,
	}

	if modal.customID == "" {
		id, err := newCustomID()
		if err != nil {
			return nil, err
		}
		modal.customID = id
	}

	if err := modal.validate(); err != nil {
		return nil, err
	}

	return modal, nil
}

func (m *Modal) validate() error {
	if len(m.rows) == 0 || len(m.rows) > 5 {
		return domain.NewValidationError("a modal takes between 1 and 5 rows")
	}

	return nil
}

func (m *Modal) CustomID() string   { return m.customID }
func (m *Modal) Title() string      { return m.title }
func (m *Modal) Rows() []*ActionRow { return m.rows }

func (m *Modal) SetCustomID(customID string) { m.customID = customID }
func (m *Modal) SetTitle(title string)       { m.title = title }

// SetRows replaces the rows, revalidating the count bound. The modal is left
// unchanged on error.
func (m *Modal) SetRows(rows []*ActionRow) error {
	next := *m
	next.rows = rows

	if err := next.validate(); err != nil {
		return err
	}

	*m = next
	return nil
}

// MarshalJSON emits the modal payload with each row in the action row wire
// shape.
func (m *Modal) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		CustomID   string       `json:"custom_id"`
		Title      string       `json:"title"`
		Components []*ActionRow `json:"components"`
	}{CustomID: m.customID, Title: m.title, Components: m.rows})
}
