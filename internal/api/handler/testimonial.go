package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/juzbuild/juzbuild/internal/api/request"
	"github.com/juzbuild/juzbuild/internal/api/response"
	"github.com/juzbuild/juzbuild/internal/core"
	"github.com/juzbuild/juzbuild/internal/model"
)

type Testimonial struct {
	svc *core.TestimonialService
}

func NewTestimonial(svc *core.TestimonialService) *Testimonial {
	return &Testimonial{svc: svc}
}

func (h *Testimonial) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTestimonial
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	testimonial := &model.Testimonial{
		SiteID:     req.SiteID,
		AuthorName: req.AuthorName,
		Company:    req.Company,
		Quote:      req.Quote,
		Rating:     req.Rating,
	}

	if err := h.svc.Create(r.Context(), testimonial); err != nil {
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusCreated, testimonial)
}

// List returns testimonials. With ?approved=true only publicly visible
// entries are returned.
func (h *Testimonial) List(w http.ResponseWriter, r *http.Request) {
	params := request.ParseListParams(r, "created_at")
	approvedOnly := r.URL.Query().Get("approved") == "true"

	items, hasMore, err := h.svc.List(r.Context(), approvedOnly, params)
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var nextCursor string
	if hasMore && len(items) > 0 {
		nextCursor = items[len(items)-1].ID
	}
	response.WritePaginated(w, http.StatusOK, items, nextCursor, hasMore)
}

func (h *Testimonial) Get(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	testimonial, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		response.WriteError(w, http.StatusNotFound, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusOK, testimonial)
}

func (h *Testimonial) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req request.ApproveTestimonial
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	testimonial, err := h.svc.SetApproved(r.Context(), id, *req.Approved)
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusOK, testimonial)
}

func (h *Testimonial) Delete(w http.ResponseWriter, r *http.Request) {
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
