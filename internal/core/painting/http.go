// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package painting

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/ekphrasis/internal/platform/apperr"
	requestutil "github.com/taibuivan/ekphrasis/internal/platform/request"
	"github.com/taibuivan/ekphrasis/internal/platform/respond"
	"github.com/taibuivan/ekphrasis/internal/platform/validate"
	"github.com/taibuivan/ekphrasis/pkg/pagination"
)

// Handler exposes the painting reader over HTTP.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/index", handler.listPaintings)
	router.Get("/painting/{row_number}", handler.getPainting)
}

func (handler *Handler) listPaintings(writer http.ResponseWriter, request *http.Request) {
	validator := &validate.Validator{}
	params := pagination.Params{
		Page:  requestutil.QueryInt(request, validator, "page", pagination.DefaultPage),
		Limit: requestutil.QueryInt(request, validator, "limit", pagination.DefaultLimit),
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, err := handler.service.List(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, page)
}

func (handler *Handler) getPainting(writer http.ResponseWriter, request *http.Request) {
	// A non-numeric row is simply a row that does not exist.
	rowNumber, err := requestutil.IntParam(request, "row_number")
	if err != nil {
		respond.Error(writer, request, apperr.NotFound(resourceName))
		return
	}

	detail, err := handler.service.Detail(request.Context(), rowNumber)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}
