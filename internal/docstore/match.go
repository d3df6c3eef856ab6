package docstore

import (
	"sort"
	"strings"
)

// Matches reports whether doc satisfies every filter, the range bounds and
// has a value for every order field of q.
func Matches(doc Document, q Query) bool {
	for _, f := range q.Filters {
		if !matchFilter(doc, f) {
			return false
		}
	}
	if q.RangeStart != nil {
		v, ok := doc.Value(q.RangeStart.Field)
		if !ok || typeRank(v) != typeRank(q.RangeStart.Value) || Compare(v, q.RangeStart.Value) < 0 {
			return false
		}
	}
	if q.RangeEnd != nil {
		v, ok := doc.Value(q.RangeEnd.Field)
		if !ok || typeRank(v) != typeRank(q.RangeEnd.Value) || Compare(v, q.RangeEnd.Value) >= 0 {
			return false
		}
	}
	for _, o := range EffectiveOrders(q) {
		if _, ok := doc.Value(o.Field); !ok {
			return false
		}
	}
	return true
}

func matchFilter(doc Document, f Filter) bool {
	v, ok := doc.Value(f.Field)
	if !ok {
		return false
	}

	switch f.Op {
	case OpEqual:
		return Compare(v, f.Value) == 0
	case OpNotEqual:
		return v != nil && Compare(v, f.Value) != 0
	case OpLess, OpLessEqual, OpGreater, OpGreaterEqual:
		if typeRank(v) != typeRank(f.Value) {
			return false
		}
		c := Compare(v, f.Value)
		switch f.Op {
		case OpLess:
			return c < 0
		case OpLessEqual:
			return c <= 0
		case OpGreater:
			return c > 0
		default:
			return c >= 0
		}
	case OpIn:
		return containsValue(f.Value, v)
	case OpNotIn:
		return v != nil && !containsValue(f.Value, v)
	case OpArrayContains:
		arr, ok := v.([]any)
		if !ok {
			return false
		}
		for _, item := range arr {
			if Compare(item, f.Value) == 0 {
				return true
			}
		}
	}
	return false
}

func containsValue(list any, v any) bool {
	items, _ := list.([]any)
	for _, item := range items {
		if Compare(item, v) == 0 {
			return true
		}
	}
	return false
}

// CompareKeys compares two documents on orders, breaking ties by id in the
// direction of the last order.
func CompareKeys(a, b Document, orders []Order) int {
	for _, o := range orders {
		av, _ := a.Value(o.Field)
		bv, _ := b.Value(o.Field)
		c := Compare(av, bv)
		if o.Direction == Desc {
			c = -c
		}
		if c != 0 {
			return c
		}
	}
	return compareID(a.ID, b.ID, orders)
}

func compareID(a, b string, orders []Order) int {
	c := strings.Compare(a, b)
	if len(orders) > 0 && orders[len(orders)-1].Direction == Desc {
		c = -c
	}
	return c
}

// Sort orders docs in place.
func Sort(docs []Document, orders []Order) {
	sort.SliceStable(docs, func(i, j int) bool {
		return CompareKeys(docs[i], docs[j], orders) < 0
	})
}

// CursorOf returns the cursor positioned at doc.
func CursorOf(doc Document, orders []Order) *Cursor {
	c := &Cursor{Values: make([]any, 0, len(orders)), ID: doc.ID}
	for _, o := range orders {
		v, _ := doc.Value(o.Field)
		c.Values = append(c.Values, v)
	}
	return c
}

// After reports whether doc sorts strictly after c.
func After(doc Document, c *Cursor, orders []Order) bool {
	for i, o := range orders {
		v, _ := doc.Value(o.Field)
		cmp := Compare(v, c.Values[i])
		if o.Direction == Desc {
			cmp = -cmp
		}
		if cmp != 0 {
			return cmp > 0
		}
	}
	return compareID(doc.ID, c.ID, orders) > 0
}
