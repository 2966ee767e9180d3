package journal

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ricardomestre7/restauris-2.0-app/internal/platform/web"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	pid, ok := web.UUIDParam(w, r, "patientID")
	if !ok {
		return
	}
	var req Request
	if !web.Decode(w, r, &req) {
		return
	}

	e, err := h.svc.Create(r.Context(), pid, req)
	if err != nil {
		h.fail(w, err)
		return
	}
	web.JSON(w, http.StatusCreated, e)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	pid, ok := web.UUIDParam(w, r, "patientID")
	if !ok {
		return
	}

	entries, err := h.svc.List(r.Context(), pid)
	if err != nil {
		h.fail(w, err)
		return
	}
	if entries == nil {
		entries = []Entry{}
	}
	web.JSON(w, http.StatusOK, entries)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := web.UUIDParam(w, r, "entryID")
	if !ok {
		return
	}

	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}
	web.JSON(w, http.StatusOK, e)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := web.UUIDParam(w, r, "entryID")
	if !ok {
		return
	}
	var req Request
	if !web.Decode(w, r, &req) {
		return
	}

	e, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		h.fail(w, err)
		return
	}
	web.JSON(w, http.StatusOK, e)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := web.UUIDParam(w, r, "entryID")
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalid):
		web.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNoPatient):
		web.Error(w, http.StatusNotFound, "Patient not found")
	case errors.Is(err, ErrNotFound):
		web.Error(w, http.StatusNotFound, "Journal entry not found")
	default:
		web.Error(w, http.StatusInternalServerError, "Failed to process journal entry")
	}
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/patients/{patientID}/journal", h.Create)
	r.Get("/patients/{patientID}/journal", h.List)
	r.Get("/journal/{entryID}", h.Get)
	r.Put("/journal/{entryID}", h.Update)
	r.Delete("/journal/{entryID}", h.Delete)
}
