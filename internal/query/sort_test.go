package query

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"admin-srv/internal/docstore"
)

func TestParseOrder(t *testing.T) {
	tcs := []struct {
		name    string
		expr    string
		want    []Order
		wantErr error
	}{
		{name: "empty", expr: "  "},
		{name: "default direction", expr: "email", want: []Order{{Field: "email", Direction: docstore.Asc}}},
		{
			name: "multiple",
			expr: "createdAt:DESC, email:asc",
			want: []Order{{Field: "createdAt", Direction: docstore.Desc}, {Field: "email", Direction: docstore.Asc}},
		},
		{name: "bad field", expr: "1email", wantErr: ErrInvalidField},
		{name: "bad direction", expr: "email:up", wantErr: ErrInvalidDirection},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseOrder(tc.expr)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("ParseOrder(%q) err = %v, want %v", tc.expr, err, tc.wantErr)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ParseOrder(%q) mismatch (-want +got):\n%s", tc.expr, diff)
			}
		})
	}
}
