package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/juzbuild/juzbuild/internal/api/request"
	"github.com/juzbuild/juzbuild/internal/api/response"
	"github.com/juzbuild/juzbuild/internal/core"
	"github.com/juzbuild/juzbuild/internal/model"
)

type Site struct {
	svc *core.SiteService
}

func NewSite(svc *core.SiteService) *Site {
	return &Site{svc: svc}
}

// Create starts a provisioning run. The response is 202: the site row is
// created immediately but the workflow builds the actual website
// asynchronously.
func (h *Site) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSite
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	site, err := h.svc.Create(r.Context(), model.ProvisioningRequest{
		UserID:                 req.UserID,
		OwnerEmail:             req.OwnerEmail,
		OwnerName:              req.OwnerName,
		CompanyName:            req.CompanyName,
		Subdomain:              req.Subdomain,
		BrandColors:            req.BrandColors,
		Tagline:                req.Tagline,
		AboutText:              req.AboutText,
		ThemeID:                req.ThemeID,
		LayoutStyle:            req.LayoutStyle,
		PropertyTypes:          req.PropertyTypes,
		IncludedPages:          req.IncludedPages,
		PreferredContactMethod: req.PreferredContactMethod,
	})
	if err != nil {
		if errors.Is(err, core.ErrSubdomainTaken) {
			response.WriteError(w, http.StatusConflict, err.Error())
			return
		}
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusAccepted, site)
}

func (h *Site) List(w http.ResponseWriter, r *http.Request) {
	params := request.ParseListParams(r, "created_at")

	sites, hasMore, err := h.svc.List(r.Context(), params)
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var nextCursor string
	if hasMore && len(sites) > 0 {
		nextCursor = sites[len(sites)-1].ID
	}
	response.WritePaginated(w, http.StatusOK, sites, nextCursor, hasMore)
}

func (h *Site) Get(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	site, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		response.WriteError(w, http.StatusNotFound, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusOK, site)
}

func (h *Site) Delete(w http.ResponseWriter, r *http.Request) {
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
