package docstore

import "strings"

// Operator is a filter comparison operator.
type Operator string

const (
	OpEqual         Operator = "=="
	OpNotEqual      Operator = "!="
	OpLess          Operator = "<"
	OpLessEqual     Operator = "<="
	OpGreater       Operator = ">"
	OpGreaterEqual  Operator = ">="
	OpIn            Operator = "in"
	OpNotIn         Operator = "not-in"
	OpArrayContains Operator = "array-contains"
)

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Filter is a single predicate on a document field.
type Filter struct {
	Field string
	Op    Operator
	Value any
}

// Order is one sort clause.
type Order struct {
	Field     string
	Direction Direction
}

// Bound is one end of a range on Field.
type Bound struct {
	Field string
	Value any
}

// Cursor identifies a position in a sorted result: the order-by values of a
// document followed by its id.
type Cursor struct {
	Values []any  `json:"v"`
	ID     string `json:"id"`
}

// Query is a declarative read against one collection.
// RangeStart is inclusive and RangeEnd exclusive. Limit 0 means no limit.
type Query struct {
	Collection string
	Filters    []Filter
	Orders     []Order
	RangeStart *Bound
	RangeEnd   *Bound
	Limit      int
	StartAfter *Cursor
}

// Document is a stored record.
type Document struct {
	ID     string
	Fields map[string]any
}

// Value resolves a dotted field path inside the document.
func (d Document) Value(path string) (any, bool) {
	var cur any = d.Fields
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Map returns the document fields with the id under "id", the shape list
// screens render.
func (d Document) Map() map[string]any {
	out := make(map[string]any, len(d.Fields)+1)
	for k, v := range d.Fields {
		out[k] = v
	}
	out["id"] = d.ID
	return out
}
