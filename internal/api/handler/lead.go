package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/juzbuild/juzbuild/internal/api/request"
	"github.com/juzbuild/juzbuild/internal/api/response"
	"github.com/juzbuild/juzbuild/internal/core"
	"github.com/juzbuild/juzbuild/internal/model"
)

type Lead struct {
	svc *core.LeadService
}

func NewLead(svc *core.LeadService) *Lead {
	return &Lead{svc: svc}
}

func (h *Lead) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateLead
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	source := req.Source
	if source == "" {
		source = "contact_form"
	}
	lead := &model.Lead{
		SiteID:  req.SiteID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
		Source:  source,
	}

	if err := h.svc.Create(r.Context(), lead); err != nil {
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusCreated, lead)
}

func (h *Lead) List(w http.ResponseWriter, r *http.Request) {
	params := request.ParseListParams(r, "created_at")

	leads, hasMore, err := h.svc.List(r.Context(), params)
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var nextCursor string
	if hasMore && len(leads) > 0 {
		nextCursor = leads[len(leads)-1].ID
	}
	response.WritePaginated(w, http.StatusOK, leads, nextCursor, hasMore)
}

func (h *Lead) Get(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	lead, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		response.WriteError(w, http.StatusNotFound, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusOK, lead)
}

func (h *Lead) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req request.UpdateLeadStatus
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	lead, err := h.svc.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusOK, lead)
}

func (h *Lead) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
