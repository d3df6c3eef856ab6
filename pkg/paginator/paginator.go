package paginator

// Adjust normalises the page size. Zero becomes DefaultPageSize and values
// above MaxPageSize are capped. Negative sizes are rejected.
func (q *CursorQuery) Adjust() error {
	switch {
	case q.PageSize < 0:
		return ErrNegativePageSize
	case q.PageSize == 0:
		q.PageSize = DefaultPageSize
	case q.PageSize > MaxPageSize:
		q.PageSize = MaxPageSize
	}
	return nil
}

// TotalPages calculates the number of pages of PerPage items needed for Total.
func (p Paginator) TotalPages() int {
	if p.Total <= 0 || p.PerPage <= 0 {
		return 0
	}
	return int((p.Total + int64(p.PerPage) - 1) / int64(p.PerPage))
}

// ToResponse converts the paginator to its response format.
func (p Paginator) ToResponse() PaginatorResponse {
	return PaginatorResponse{
		Total:      p.Total,
		Count:      p.Count,
		PerPage:    p.PerPage,
		TotalPages: p.TotalPages(),
		NextCursor: p.NextCursor,
	}
}
