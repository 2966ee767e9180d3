package patient

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

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !web.Decode(w, r, &req) {
		return
	}

	reg, err := h.svc.Register(r.Context(), req)
	if err != nil {
		h.fail(w, err)
		return
	}
	web.JSON(w, http.StatusCreated, reg)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	patients, err := h.svc.List(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	if patients == nil {
		patients = []Patient{}
	}
	web.JSON(w, http.StatusOK, patients)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := web.UUIDParam(w, r, "patientID")
	if !ok {
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}
	web.JSON(w, http.StatusOK, p)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := web.UUIDParam(w, r, "patientID")
	if !ok {
		return
	}
	var req RegisterRequest
	if !web.Decode(w, r, &req) {
		return
	}

	p, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		h.fail(w, err)
		return
	}
	web.JSON(w, http.StatusOK, p)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := web.UUIDParam(w, r, "patientID")
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
	case errors.Is(err, ErrNotFound):
		web.Error(w, http.StatusNotFound, "Patient not found")
	default:
		web.Error(w, http.StatusInternalServerError, "Failed to process patient")
	}
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/patients", h.Register)
	r.Get("/patients", h.List)
	r.Get("/patients/{patientID}", h.Get)
	r.Put("/patients/{patientID}", h.Update)
	r.Delete("/patients/{patientID}", h.Delete)
}
