package util

import (
	"testing"
	"time"
)

func TestIsPassword(t *testing.T) {
	tcs := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "default password", password: "Admin@25", wantErr: false},
		{name: "letters and digits", password: "abcdef12", wantErr: false},
		{name: "too short", password: "ab1", wantErr: true},
		{name: "too long", password: "abcdefghij1234567", wantErr: true},
		{name: "no digit", password: "abcdefgh", wantErr: true},
		{name: "no letter", password: "12345678", wantErr: true},
		{name: "invalid character", password: "abcd 1234", wantErr: true},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			err := IsPassword(tc.password)
			if (err != nil) != tc.wantErr {
				t.Errorf("IsPassword(%q) err = %v, wantErr %v", tc.password, err, tc.wantErr)
			}
		})
	}
}

func TestIsName(t *testing.T) {
	for _, ok := range []string{"Alice", "O'Neil", "Mary-Jane", "van der Berg"} {
		if err := IsName(ok); err != nil {
			t.Errorf("IsName(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"", "R2D2", "Nguyễn"} {
		if err := IsName(bad); err == nil {
			t.Errorf("IsName(%q) expected error", bad)
		}
	}
}

func TestIsEmail(t *testing.T) {
	if err := IsEmail("alice@x.com"); err != nil {
		t.Errorf("IsEmail: %v", err)
	}
	if err := IsEmail("alice@"); err == nil {
		t.Error("expected error")
	}
}

func TestRecordTime(t *testing.T) {
	tests := map[string]time.Time{
		"19/10/2026 | 09:05:09 PM": time.Date(2026, 10, 19, 21, 5, 9, 0, time.UTC),
		"01/02/2026 | 12:00:00 AM": time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		"01/02/2026 | 12:30:00 PM": time.Date(2026, 2, 1, 12, 30, 0, 0, time.UTC),
	}
	for want, ts := range tests {
		if got := RecordTime(ts); got != want {
			t.Errorf("RecordTime(%v) = %q, want %q", ts, got, want)
		}
	}
}
