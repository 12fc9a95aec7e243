package component

import (
	"github.com/rs/zerolog/log"

	"slashkit/internal/core/domain"
)

// ExtractCustomIDs collects every custom id referenced by the given value: a
// bare id string, a decoded component record, a row record (the ids of its
// children), or an arbitrarily nested sequence of those. Records without a
// custom id contribute nothing; shapes outside the set fail with a
// TypeMismatchError.
func ExtractCustomIDs(v any) ([]string, error) {
	switch value := v.(type) {
	case string:
		return []string{value}, nil
	case map[string]any:
		return recordCustomIDs(value), nil
	case []string:
		return append([]string(nil), value...), nil
	case []map[string]any:
		var ids []string
		for _, record := range value {
			ids = append(ids, recordCustomIDs(record)...)
		}
		return ids, nil
	case []any:
		var ids []string
		for _, element := range value {
			nested, err := ExtractCustomIDs(element)
			if err != nil {
				return nil, err
			}
			ids = append(ids, nested...)
		}
		return ids, nil
	default:
		log.Debug().Type("value", v).Msg("custom id extraction got an unsupported shape")
		return nil, domain.NewTypeMismatchError(v, "string, map or slice")
	}
}

// ExtractMessageIDs collects message ids from a bare id, a message value, or
// an arbitrarily nested sequence of those.
func ExtractMessageIDs(v any) ([]int64, error) {
	switch value := v.(type) {
	case int:
		return []int64{int64(value)}, nil
	case int64:
		return []int64{value}, nil
	case Message:
		return []int64{value.ID}, nil
	case *Message:
		return []int64{value.ID}, nil
	case []int64:
		return append([]int64(nil), value...), nil
	case []int:
		ids := make([]int64, 0, len(value))
		for _, id := range value {
			ids = append(ids, int64(id))
		}
		return ids, nil
	case []*Message:
		ids := make([]int64, 0, len(value))
		for _, message := range value {
			ids = append(ids, message.ID)
		}
		return ids, nil
	case []any:
		var ids []int64
		for _, element := range value {
			nested, err := ExtractMessageIDs(element)
			if err != nil {
				return nil, err
			}
			ids = append(ids, nested...)
		}
		return ids, nil
	default:
		log.Debug().Type("value", v).Msg("message id extraction got an unsupported shape")
		return nil, domain.NewTypeMismatchError(v, "Message, int or slice")
	}
}

func recordCustomIDs(record map[string]any) []string {
	if recordType(record) == TypeActionRow {
		var ids []string
		for _, child := range childRecords(record) {
			if id, ok := child["custom_id"].(string); ok {
				ids = append(ids, id)
			}
		}
		return ids
	}

	if id, ok := record["custom_id"].(string); ok {
		return []string{id}
	}

	return nil
}

// recordType reads the numeric discriminant of a wire record. Records decoded
// from JSON carry float64 numbers; handcrafted ones may carry plain ints.
func recordType(record map[string]any) Type {
	switch t := record["type"].(type) {
	case float64:
		return Type(t)
	case int:
		return Type(t)
	case Type:
		return t
	}

	return 0
}

func childRecords(record map[string]any) []map[string]any {
	switch children := record["components"].(type) {
	case []map[string]any:
		return children
	case []any:
		records := make([]map[string]any, 0, len(children))
		for _, child := range children {
			if m, ok := child.(map[string]any); ok {
				records = append(records, m)
			}
		}
		return records
	}

	return nil
}
