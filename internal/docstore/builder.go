package docstore

// NewQuery starts a query against collection.
func NewQuery(collection string) Query {
	return Query{Collection: collection}
}

func NewFilter(field string, op Operator, value any) Filter {
	return Filter{Field: field, Op: op, Value: value}
}

func NewOrder(field string, dir Direction) Order {
	return Order{Field: field, Direction: dir}
}

func NewRangeStart(field string, value any) *Bound {
	return &Bound{Field: field, Value: value}
}

func NewRangeEnd(field string, value any) *Bound {
	return &Bound{Field: field, Value: value}
}

// NewLimit returns a copy of q limited to n documents.
func NewLimit(q Query, n int) Query {
	q.Limit = n
	return q
}

// NewCursorAfter returns a copy of q that starts after c.
func NewCursorAfter(q Query, c *Cursor) Query {
	q.StartAfter = c
	return q
}

// Where returns a copy of q with f appended.
func (q Query) Where(f Filter) Query {
	q.Filters = append(q.Filters[:len(q.Filters):len(q.Filters)], f)
	return q
}

// OrderBy returns a copy of q with o appended.
func (q Query) OrderBy(o Order) Query {
	q.Orders = append(q.Orders[:len(q.Orders):len(q.Orders)], o)
	return q
}

// HasOrder reports whether q already sorts by field.
func (q Query) HasOrder(field string) bool {
	for _, o := range q.Orders {
		if o.Field == field {
			return true
		}
	}
	return false
}
