package query

import (
	"strings"

	"admin-srv/internal/docstore"
)

// ParseOrder parses a sort expression like "email:desc,createdAt". A missing
// direction means ascending. An empty expression yields no orders.
func ParseOrder(expr string) ([]Order, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}

	parts := strings.Split(expr, ",")
	orders := make([]Order, 0, len(parts))
	for _, part := range parts {
		field, dir, _ := strings.Cut(strings.TrimSpace(part), ":")
		if !docstore.IsValidFieldPath(field) {
			return nil, ErrInvalidField
		}
		d := docstore.Asc
		if dir != "" {
			d = docstore.Direction(strings.ToLower(dir))
		}
		if !docstore.IsValidDirection(d) {
			return nil, ErrInvalidDirection
		}
		orders = append(orders, Order{Field: field, Direction: d})
	}
	return orders, nil
}
