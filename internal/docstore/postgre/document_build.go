package postgre

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"admin-srv/internal/docstore"
)

// Type ranks mirroring docstore.Compare. Times and bytes are stored as JSON
// strings so they rank as strings.
const (
	pgRankNull   = 0
	pgRankBool   = 1
	pgRankNumber = 2
	pgRankString = 4
	pgRankArray  = 6
	pgRankObject = 7
)

type sqlBuilder struct {
	args []any
}

func (b *sqlBuilder) arg(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *sqlBuilder) path(field string) string {
	return "(data #> " + b.arg(pq.Array(strings.Split(field, "."))) + "::text[])"
}

func (b *sqlBuilder) jsonb(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: value %v is not JSON encodable", docstore.ErrInvalidQuery, v)
	}
	return b.arg(string(raw)) + "::jsonb", nil
}

func rankExpr(path string) string {
	return fmt.Sprintf("(CASE jsonb_typeof(%s) WHEN 'null' THEN %d WHEN 'boolean' THEN %d WHEN 'number' THEN %d WHEN 'string' THEN %d WHEN 'array' THEN %d ELSE %d END)",
		path, pgRankNull, pgRankBool, pgRankNumber, pgRankString, pgRankArray, pgRankObject)
}

func jsonType(v any) string {
	switch pgRank(v) {
	case pgRankNull:
		return "null"
	case pgRankBool:
		return "boolean"
	case pgRankNumber:
		return "number"
	case pgRankString:
		return "string"
	case pgRankArray:
		return "array"
	}
	return "object"
}

func pgRank(v any) int {
	switch v.(type) {
	case nil:
		return pgRankNull
	case bool:
		return pgRankBool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, json.Number:
		return pgRankNumber
	case string, time.Time, []byte:
		return pgRankString
	case []any:
		return pgRankArray
	}
	return pgRankObject
}

func comparisonSQL(op docstore.Operator) string {
	switch op {
	case docstore.OpLess:
		return "<"
	case docstore.OpLessEqual:
		return "<="
	case docstore.OpGreater:
		return ">"
	case docstore.OpGreaterEqual:
		return ">="
	}
	return "="
}

func (b *sqlBuilder) filter(f docstore.Filter) (string, error) {
	p := b.path(f.Field)
	switch f.Op {
	case docstore.OpEqual:
		v, err := b.jsonb(f.Value)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s = %s", p, v), nil
	case docstore.OpNotEqual:
		v, err := b.jsonb(f.Value)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("jsonb_typeof(%s) <> 'null' AND %s <> %s", p, p, v), nil
	case docstore.OpLess, docstore.OpLessEqual, docstore.OpGreater, docstore.OpGreaterEqual:
		v, err := b.jsonb(f.Value)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("jsonb_typeof(%s) = '%s' AND %s %s %s", p, jsonType(f.Value), p, comparisonSQL(f.Op), v), nil
	case docstore.OpIn, docstore.OpNotIn:
		items, _ := f.Value.([]any)
		list := make([]string, 0, len(items))
		for _, item := range items {
			v, err := b.jsonb(item)
			if err != nil {
				return "", err
			}
			list = append(list, v)
		}
		if f.Op == docstore.OpIn {
			if len(list) == 0 {
				return "FALSE", nil
			}
			return fmt.Sprintf("%s IN (%s)", p, strings.Join(list, ", ")), nil
		}
		if len(list) == 0 {
			return fmt.Sprintf("jsonb_typeof(%s) <> 'null'", p), nil
		}
		return fmt.Sprintf("jsonb_typeof(%s) <> 'null' AND %s NOT IN (%s)", p, p, strings.Join(list, ", ")), nil
	case docstore.OpArrayContains:
		v, err := b.jsonb([]any{f.Value})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("jsonb_typeof(%s) = 'array' AND %s @> %s", p, p, v), nil
	}
	return "", fmt.Errorf("%w: unsupported operator %q", docstore.ErrInvalidQuery, f.Op)
}

func (b *sqlBuilder) bound(bd *docstore.Bound, op string) (string, error) {
	p := b.path(bd.Field)
	v, err := b.jsonb(bd.Value)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("jsonb_typeof(%s) = '%s' AND %s %s %s", p, jsonType(bd.Value), p, op, v), nil
}

// after renders the exclusive start-after predicate as the lexicographic
// expansion over (orders..., id).
func (b *sqlBuilder) after(c *docstore.Cursor, orders []docstore.Order) (string, error) {
	var branches []string
	for i := 0; i <= len(orders); i++ {
		var terms []string
		for j := 0; j < i; j++ {
			v, err := b.jsonb(c.Values[j])
			if err != nil {
				return "", err
			}
			terms = append(terms, fmt.Sprintf("%s = %s", b.path(orders[j].Field), v))
		}

		if i == len(orders) {
			op := ">"
			if len(orders) > 0 && orders[len(orders)-1].Direction == docstore.Desc {
				op = "<"
			}
			terms = append(terms, fmt.Sprintf("id %s %s", op, b.arg(c.ID)))
		} else {
			op := ">"
			if orders[i].Direction == docstore.Desc {
				op = "<"
			}
			v, err := b.jsonb(c.Values[i])
			if err != nil {
				return "", err
			}
			rank := pgRank(c.Values[i])
			rankOf := rankExpr(b.path(orders[i].Field))
			terms = append(terms, fmt.Sprintf("(%s %s %d OR (%s = %d AND %s %s %s))",
				rankOf, op, rank, rankOf, rank, b.path(orders[i].Field), op, v))
		}
		branches = append(branches, "("+strings.Join(terms, " AND ")+")")
	}
	return "(" + strings.Join(branches, " OR ") + ")", nil
}

// where renders the WHERE clause shared by the count and run statements.
func (b *sqlBuilder) where(q docstore.Query, withCursor bool) (string, error) {
	conds := []string{"collection = " + b.arg(q.Collection)}

	for _, f := range q.Filters {
		c, err := b.filter(f)
		if err != nil {
			return "", err
		}
		conds = append(conds, c)
	}
	if q.RangeStart != nil {
		c, err := b.bound(q.RangeStart, ">=")
		if err != nil {
			return "", err
		}
		conds = append(conds, c)
	}
	if q.RangeEnd != nil {
		c, err := b.bound(q.RangeEnd, "<")
		if err != nil {
			return "", err
		}
		conds = append(conds, c)
	}

	orders := docstore.EffectiveOrders(q)
	for _, o := range orders {
		conds = append(conds, b.path(o.Field)+" IS NOT NULL")
	}

	if withCursor && q.StartAfter != nil {
		c, err := b.after(q.StartAfter, orders)
		if err != nil {
			return "", err
		}
		conds = append(conds, c)
	}
	return strings.Join(conds, " AND "), nil
}

func (b *sqlBuilder) orderBy(orders []docstore.Order) string {
	parts := make([]string, 0, 2*len(orders)+1)
	for _, o := range orders {
		dir := "ASC"
		if o.Direction == docstore.Desc {
			dir = "DESC"
		}
		p := b.path(o.Field)
		parts = append(parts, rankExpr(p)+" "+dir, p+" "+dir)
	}
	idDir := "ASC"
	if len(orders) > 0 && orders[len(orders)-1].Direction == docstore.Desc {
		idDir = "DESC"
	}
	parts = append(parts, "id "+idDir)
	return strings.Join(parts, ", ")
}

func buildSetArgs(fields map[string]any) (string, error) {
	if fields == nil {
		fields = map[string]any{}
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("docstore: encode fields: %w", err)
	}
	return string(raw), nil
}
