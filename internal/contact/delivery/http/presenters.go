package http

import (
	"time"

	"admin-srv/internal/contact"
	"admin-srv/internal/docstore"
	"admin-srv/internal/model"
	"admin-srv/internal/query"
	"admin-srv/pkg/paginator"

	"github.com/samber/lo"
)

type listReq struct {
	PageSize   int    `form:"page_size"`
	Cursor     string `form:"cursor"`
	Sort       string `form:"sort"`
	Generation int64  `form:"generation"`
}

func (r listReq) toInput(orders []query.Order) contact.ListInput {
	return contact.ListInput{
		Pagination: query.Pagination{PageSize: r.PageSize, LastVisible: r.Cursor},
		Order:      orders,
		Generation: r.Generation,
	}
}

type contactResp struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

type listResp struct {
	Data        []contactResp               `json:"data"`
	TotalCount  int64                       `json:"total_count"`
	LastVisible *string                     `json:"last_visible"`
	Generation  int64                       `json:"generation"`
	Paginator   paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newListResp(page query.Page, pageSize int) listResp {
	return listResp{
		Data: lo.Map(page.Data, func(d docstore.Document, _ int) contactResp {
			c := model.NewContactFromDocument(d)
			return contactResp{
				ID:        c.ID,
				Name:      c.Name,
				Email:     c.Email,
				Subject:   c.Subject,
				Message:   c.Message,
				CreatedAt: c.CreatedAt,
			}
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

type exportResp struct {
	URL        string    `json:"url"`
	ObjectName string    `json:"object_name"`
	Count      int       `json:"count"`
	ExpiresAt  time.Time `json:"expires_at"`
}

func (h *handler) newExportResp(o contact.ExportOutput) exportResp {
	return exportResp{
		URL:        o.URL,
		ObjectName: o.ObjectName,
		Count:      o.Count,
		ExpiresAt:  o.ExpiresAt,
	}
}
