package contact

import (
	"time"

	"admin-srv/internal/query"
)

const (
	ExportPageSize    = 100
	ExportURLExpiry   = time.Hour
	ExportContentType = "text/csv"
)

// ExportColumns is the CSV header of a contacts export.
var ExportColumns = []string{"id", "createdAt", "name", "email", "subject", "message"}

type ListInput struct {
	Pagination query.Pagination
	Order      []query.Order
	Generation int64
}

type ExportOutput struct {
	URL        string
	ObjectName string
	Count      int
	ExpiresAt  time.Time
}
