package http

import (
	"admin-srv/internal/docstore"
	"admin-srv/internal/model"
	"admin-srv/internal/query"
	"admin-srv/internal/user"
	"admin-srv/pkg/paginator"

	"github.com/samber/lo"
)

type listReq struct {
	PageSize   int    `form:"page_size"`
	Cursor     string `form:"cursor"`
	Sort       string `form:"sort"`
	Search     string `form:"search"`
	Generation int64  `form:"generation"`
}

func (r listReq) toInput(orders []query.Order) user.ListInput {
	return user.ListInput{
		Pagination: query.Pagination{PageSize: r.PageSize, LastVisible: r.Cursor},
		Order:      orders,
		Search:     r.Search,
		Generation: r.Generation,
	}
}

type createReq struct {
	Type      string `json:"type" binding:"required,oneof=manual uid"`
	UID       string `json:"uid"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	UserName  string `json:"user_name"`
}

func (r createReq) toInput() user.CreateInput {
	return user.CreateInput{
		Type:      r.Type,
		UID:       r.UID,
		Email:     r.Email,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		UserName:  r.UserName,
	}
}

type updateProfileReq struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	UserName  string `json:"user_name"`
}

func (r updateProfileReq) toInput() user.UpdateProfileInput {
	return user.UpdateProfileInput{FirstName: r.FirstName, LastName: r.LastName, UserName: r.UserName}
}

type userResp struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	UserName  string `json:"user_name"`
	CreatedAt string `json:"created_at"`
}

func (h *handler) newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		UserName:  u.UserName,
		CreatedAt: u.CreatedAt,
	}
}

type listResp struct {
	Data        []userResp                  `json:"data"`
	TotalCount  int64                       `json:"total_count"`
	LastVisible *string                     `json:"last_visible"`
	Generation  int64                       `json:"generation"`
	Paginator   paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newListResp(page query.Page, pageSize int) listResp {
	return listResp{
		Data: lo.Map(page.Data, func(d docstore.Document, _ int) userResp {
			return h.newUserResp(model.NewUserFromDocument(d))
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
