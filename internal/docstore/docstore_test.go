package docstore

import (
	"errors"
	"testing"
	"time"
)

func TestCompare(t *testing.T) {
	now := time.Now()
	tcs := []struct {
		name string
		a, b any
		want int
	}{
		{name: "null before bool", a: nil, b: false, want: -1},
		{name: "bool before number", a: true, b: 0, want: -1},
		{name: "number before time", a: 1e9, b: now, want: -1},
		{name: "time before string", a: now, b: "", want: -1},
		{name: "string before array", a: "z", b: []any{}, want: -1},
		{name: "array before map", a: []any{1}, b: map[string]any{}, want: -1},
		{name: "int equals float", a: 3, b: 3.0, want: 0},
		{name: "bytewise strings", a: "Z", b: "a", want: -1},
		{name: "prefix sorts first", a: "alice", b: "alice2", want: -1},
		{name: "array elementwise", a: []any{1, 2}, b: []any{1, 3}, want: -1},
		{name: "shorter array first", a: []any{1}, b: []any{1, 0}, want: -1},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := Compare(tc.a, tc.b); got != tc.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
			if got := Compare(tc.b, tc.a); got != -tc.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tc.b, tc.a, got, -tc.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	base := NewQuery("Users")
	tcs := []struct {
		name    string
		q       Query
		wantErr error
	}{
		{
			name: "plain",
			q:    base.Where(NewFilter("role", OpEqual, "admin")).OrderBy(NewOrder("email", Desc)),
		},
		{
			name:    "missing collection",
			q:       Query{},
			wantErr: ErrInvalidQuery,
		},
		{
			name:    "inequalities on two fields",
			q:       base.Where(NewFilter("age", OpGreater, 1)).Where(NewFilter("score", OpLess, 3)),
			wantErr: ErrInvalidQuery,
		},
		{
			name: "range and inequality on same field",
			q: Query{
				Collection: "Users",
				Filters:    []Filter{NewFilter("email", OpNotEqual, "x")},
				RangeStart: NewRangeStart("email", "a"),
			},
		},
		{
			name: "range field not first order",
			q: Query{
				Collection: "Users",
				Orders:     []Order{NewOrder("createdAt", Desc), NewOrder("email", Asc)},
				RangeStart: NewRangeStart("email", "a"),
				RangeEnd:   NewRangeEnd("email", "a\U0010FFFF"),
			},
			wantErr: ErrInvalidQuery,
		},
		{
			name:    "in without array",
			q:       base.Where(NewFilter("role", OpIn, "admin")),
			wantErr: ErrInvalidQuery,
		},
		{
			name:    "bad field path",
			q:       base.OrderBy(NewOrder("a..b", Asc)),
			wantErr: ErrInvalidQuery,
		},
		{
			name:    "cursor shorter than orders",
			q:       NewCursorAfter(base.OrderBy(NewOrder("email", Asc)), &Cursor{ID: "1"}),
			wantErr: ErrInvalidCursor,
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.q)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestQueryBuildersDoNotAlias(t *testing.T) {
	base := NewQuery("Users").Where(NewFilter("a", OpEqual, 1))
	q1 := base.Where(NewFilter("b", OpEqual, 2))
	q2 := base.Where(NewFilter("c", OpEqual, 3))
	if q1.Filters[1].Field != "b" || q2.Filters[1].Field != "c" {
		t.Fatalf("filters aliased: %v %v", q1.Filters, q2.Filters)
	}
	if len(base.Filters) != 1 {
		t.Fatalf("base mutated: %v", base.Filters)
	}
}

func TestAfter(t *testing.T) {
	orders := []Order{NewOrder("email", Desc)}
	a := Document{ID: "1", Fields: map[string]any{"email": "b@x.com"}}
	b := Document{ID: "2", Fields: map[string]any{"email": "a@x.com"}}
	c := Document{ID: "0", Fields: map[string]any{"email": "a@x.com"}}

	cur := CursorOf(a, orders)
	if !After(b, cur, orders) {
		t.Error("b should sort after a in descending order")
	}
	if After(a, cur, orders) {
		t.Error("a must not sort after its own cursor")
	}

	docs := []Document{c, a, b}
	Sort(docs, orders)
	got := []string{docs[0].ID, docs[1].ID, docs[2].ID}
	want := []string{"1", "2", "0"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Sort() ids = %v, want %v", got, want)
		}
	}
}

func TestDocumentValue(t *testing.T) {
	d := Document{ID: "1", Fields: map[string]any{"profile": map[string]any{"name": "Alice"}}}
	if v, ok := d.Value("profile.name"); !ok || v != "Alice" {
		t.Errorf("Value(profile.name) = %v, %v", v, ok)
	}
	if _, ok := d.Value("profile.age"); ok {
		t.Error("Value(profile.age) should be missing")
	}
	if m := d.Map(); m["id"] != "1" {
		t.Errorf("Map()[id] = %v", m["id"])
	}
}
