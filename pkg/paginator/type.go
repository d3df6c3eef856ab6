package paginator

// CursorQuery contains cursor pagination parameters for a request.
type CursorQuery struct {
	PageSize int    `json:"page_size" form:"page_size"`
	Cursor   string `json:"cursor" form:"cursor"`
}

// Paginator contains pagination metadata for a query result.
type Paginator struct {
	Total      int64
	Count      int
	PerPage    int
	NextCursor *string
}

// PaginatorResponse is the response format for pagination metadata.
type PaginatorResponse struct {
	Total      int64   `json:"total"`
	Count      int     `json:"count"`
	PerPage    int     `json:"per_page"`
	TotalPages int     `json:"total_pages"`
	NextCursor *string `json:"next_cursor"`
}
