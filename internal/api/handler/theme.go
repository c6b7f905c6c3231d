package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/juzbuild/juzbuild/internal/api/request"
	"github.com/juzbuild/juzbuild/internal/api/response"
	"github.com/juzbuild/juzbuild/internal/core"
)

type Theme struct {
	svc *core.ThemeService
}

func NewTheme(svc *core.ThemeService) *Theme {
	return &Theme{svc: svc}
}

func (h *Theme) List(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, h.svc.List())
}

func (h *Theme) Get(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	theme, err := h.svc.GetByID(id)
	if err != nil {
		response.WriteError(w, http.StatusNotFound, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusOK, theme)
}
