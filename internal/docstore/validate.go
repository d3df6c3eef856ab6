package docstore

import (
	"fmt"
	"regexp"
)

var fieldPathRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// IsValidFieldPath reports whether path is a dotted field path.
func IsValidFieldPath(path string) bool {
	return fieldPathRegex.MatchString(path)
}

func IsValidOperator(op Operator) bool {
	switch op {
	case OpEqual, OpNotEqual, OpLess, OpLessEqual, OpGreater, OpGreaterEqual, OpIn, OpNotIn, OpArrayContains:
		return true
	}
	return false
}

func IsValidDirection(d Direction) bool {
	return d == Asc || d == Desc
}

func isInequality(op Operator) bool {
	switch op {
	case OpNotEqual, OpLess, OpLessEqual, OpGreater, OpGreaterEqual, OpNotIn:
		return true
	}
	return false
}

// Validate checks q against the rules every driver enforces:
// inequality predicates (range bounds included) target a single field, and
// that field is the first order clause when orders are present.
func Validate(q Query) error {
	if q.Collection == "" {
		return fmt.Errorf("%w: collection is required", ErrInvalidQuery)
	}
	if q.Limit < 0 {
		return fmt.Errorf("%w: negative limit %d", ErrInvalidQuery, q.Limit)
	}

	var inequalityField string
	checkInequality := func(field string) error {
		if inequalityField == "" {
			inequalityField = field
			return nil
		}
		if inequalityField != field {
			return fmt.Errorf("%w: inequality filters on multiple fields %q and %q", ErrInvalidQuery, inequalityField, field)
		}
		return nil
	}

	for _, f := range q.Filters {
		if !IsValidFieldPath(f.Field) {
			return fmt.Errorf("%w: invalid field path %q", ErrInvalidQuery, f.Field)
		}
		if !IsValidOperator(f.Op) {
			return fmt.Errorf("%w: unsupported operator %q", ErrInvalidQuery, f.Op)
		}
		if f.Op == OpIn || f.Op == OpNotIn {
			if _, ok := f.Value.([]any); !ok {
				return fmt.Errorf("%w: operator %q needs an array value", ErrInvalidQuery, f.Op)
			}
		}
		if isInequality(f.Op) {
			if err := checkInequality(f.Field); err != nil {
				return err
			}
		}
	}
	for _, b := range []*Bound{q.RangeStart, q.RangeEnd} {
		if b == nil {
			continue
		}
		if !IsValidFieldPath(b.Field) {
			return fmt.Errorf("%w: invalid field path %q", ErrInvalidQuery, b.Field)
		}
		if err := checkInequality(b.Field); err != nil {
			return err
		}
	}

	for _, o := range q.Orders {
		if !IsValidFieldPath(o.Field) {
			return fmt.Errorf("%w: invalid field path %q", ErrInvalidQuery, o.Field)
		}
		if !IsValidDirection(o.Direction) {
			return fmt.Errorf("%w: unsupported direction %q", ErrInvalidQuery, o.Direction)
		}
	}
	if inequalityField != "" && len(q.Orders) > 0 && q.Orders[0].Field != inequalityField {
		return fmt.Errorf("%w: inequality field %q must be the first order, got %q", ErrInvalidQuery, inequalityField, q.Orders[0].Field)
	}

	if q.StartAfter != nil {
		if len(q.StartAfter.Values) != len(EffectiveOrders(q)) || q.StartAfter.ID == "" {
			return fmt.Errorf("%w: cursor does not match the query orders", ErrInvalidCursor)
		}
	}
	return nil
}

// EffectiveOrders returns the orders a driver sorts by. A query with an
// inequality field and no orders is sorted by that field ascending.
func EffectiveOrders(q Query) []Order {
	if len(q.Orders) > 0 {
		return q.Orders
	}
	for _, f := range q.Filters {
		if isInequality(f.Op) {
			return []Order{{Field: f.Field, Direction: Asc}}
		}
	}
	if q.RangeStart != nil {
		return []Order{{Field: q.RangeStart.Field, Direction: Asc}}
	}
	if q.RangeEnd != nil {
		return []Order{{Field: q.RangeEnd.Field, Direction: Asc}}
	}
	return nil
}
