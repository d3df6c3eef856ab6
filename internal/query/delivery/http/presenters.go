package http

import (
	"admin-srv/internal/docstore"
	"admin-srv/internal/query"
	"admin-srv/pkg/paginator"

	"github.com/samber/lo"
)

type filterReq struct {
	Field    string `json:"field" binding:"required"`
	Operator string `json:"operator" binding:"required"`
	Value    any    `json:"value"`
}

type orderReq struct {
	Field     string `json:"field" binding:"required"`
	Direction string `json:"direction" binding:"required"`
}

type paginationReq struct {
	PageSize    int    `json:"page_size"`
	LastVisible string `json:"last_visible"`
}

type searchReq struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type fetchPageReq struct {
	Filters    []filterReq   `json:"filters"`
	Order      []orderReq    `json:"order"`
	Pagination paginationReq `json:"pagination"`
	Search     *searchReq    `json:"search"`
	Generation int64         `json:"generation"`
}

func (r fetchPageReq) toInput() query.Options {
	opts := query.Options{
		Filters: lo.Map(r.Filters, func(f filterReq, _ int) query.Filter {
			return query.Filter{Field: f.Field, Operator: docstore.Operator(f.Operator), Value: f.Value}
		}),
		Order: lo.Map(r.Order, func(o orderReq, _ int) query.Order {
			return query.Order{Field: o.Field, Direction: docstore.Direction(o.Direction)}
		}),
		Pagination: query.Pagination{
			PageSize:    r.Pagination.PageSize,
			LastVisible: r.Pagination.LastVisible,
		},
		Generation: r.Generation,
	}
	if r.Search != nil {
		opts.Search = &query.Search{Field: r.Search.Field, Value: r.Search.Value}
	}
	return opts
}

type pageResp struct {
	Data        []map[string]any            `json:"data"`
	TotalCount  int64                       `json:"total_count"`
	LastVisible *string                     `json:"last_visible"`
	Generation  int64                       `json:"generation"`
	Paginator   paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newPageResp(page query.Page, pageSize int) pageResp {
	return pageResp{
		Data: lo.Map(page.Data, func(d docstore.Document, _ int) map[string]any {
			return d.Map()
		}),
		TotalCount:  page.TotalCount,
		LastVisible: page.LastVisible,
		Generation:  page.Generation,
		Paginator: paginator.Paginator{
			Total:      page.TotalCount,
			Count:      len(page.Data),
			PerPage:    pageSize,
			NextCursor: page.LastVisible,
		}.ToResponse(),
	}
}
