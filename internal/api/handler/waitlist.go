package handler

import (
	"net/http"

	"github.com/juzbuild/juzbuild/internal/api/request"
	"github.com/juzbuild/juzbuild/internal/api/response"
	"github.com/juzbuild/juzbuild/internal/core"
	"github.com/juzbuild/juzbuild/internal/model"
)

// Waitlist serves the public pre-launch signup and contact endpoints.
type Waitlist struct {
	svc *core.WaitlistService
}

func NewWaitlist(svc *core.WaitlistService) *Waitlist {
	return &Waitlist{svc: svc}
}

func (h *Waitlist) Join(w http.ResponseWriter, r *http.Request) {
	var req request.JoinWaitlist
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	entry := &model.WaitlistEntry{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Phone:   req.Phone,
	}

	if err := h.svc.Join(r.Context(), entry); err != nil {
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusCreated, entry)
}

func (h *Waitlist) Contact(w http.ResponseWriter, r *http.Request) {
	var req request.Contact
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	msg := &model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := h.svc.Contact(r.Context(), msg); err != nil {
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusCreated, msg)
}
