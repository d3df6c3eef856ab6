package minio

import (
	"strings"
	"testing"
	"time"
)

func TestValidateConfig(t *testing.T) {
	cfg := Config{Endpoint: "localhost", AccessKey: "a", SecretKey: "s", Bucket: "admin-exports"}
	if err := validateConfig(&cfg); err != nil {
		t.Fatalf("validateConfig: %v", err)
	}
	if cfg.Endpoint != "localhost:9000" {
		t.Errorf("Endpoint = %q, want default port appended", cfg.Endpoint)
	}

	missing := Config{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s"}
	if err := validateConfig(&missing); err == nil {
		t.Error("expected error without bucket")
	}
}

func TestValidateBucketName(t *testing.T) {
	tcs := []struct {
		name    string
		wantErr bool
	}{
		{"admin-exports", false},
		{"ab", true},
		{"Admin", true},
		{"-admin", true},
		{"admin.exports", false},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if err := validateBucketName(tc.name); (err != nil) != tc.wantErr {
				t.Errorf("validateBucketName(%q) err = %v, wantErr %v", tc.name, err, tc.wantErr)
			}
		})
	}
}

func TestValidateUploadRequest(t *testing.T) {
	ok := &UploadRequest{
		BucketName:  "admin-exports",
		ObjectName:  "contacts/export.csv",
		Reader:      strings.NewReader("id\n"),
		Size:        3,
		ContentType: "text/csv",
	}
	if err := validateUploadRequest(ok); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	bad := *ok
	bad.ObjectName = "/contacts.csv"
	if err := validateUploadRequest(&bad); err == nil {
		t.Error("expected error for leading slash")
	}

	bad = *ok
	bad.Reader = nil
	if err := validateUploadRequest(&bad); err == nil {
		t.Error("expected error without reader")
	}
}

func TestValidatePresignedURLRequest(t *testing.T) {
	req := &PresignedURLRequest{BucketName: "admin-exports", ObjectName: "a.csv", Method: MethodGET, Expiry: time.Hour}
	if err := validatePresignedURLRequest(req); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	req.Expiry = 8 * 24 * time.Hour
	if err := validatePresignedURLRequest(req); err == nil {
		t.Error("expected error for expiry above 7 days")
	}
}
