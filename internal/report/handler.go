package report

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ricardomestre7/restauris-2.0-app/internal/assessment"
	"github.com/ricardomestre7/restauris-2.0-app/internal/patient"
	"github.com/ricardomestre7/restauris-2.0-app/internal/platform/web"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	id, ok := web.UUIDParam(w, r, "assessmentID")
	if !ok {
		return
	}

	rep, err := h.svc.Build(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+rep.FileName+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(rep.Data)))
	w.WriteHeader(http.StatusOK)
	w.Write(rep.Data)
}

func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	id, ok := web.UUIDParam(w, r, "assessmentID")
	if !ok {
		return
	}

	if err := h.svc.Send(r.Context(), id); err != nil {
		h.fail(w, err)
		return
	}
	web.JSON(w, http.StatusAccepted, map[string]string{"status": "sent"})
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, assessment.ErrNotFound):
		web.Error(w, http.StatusNotFound, "Assessment not found")
	case errors.Is(err, patient.ErrNotFound):
		web.Error(w, http.StatusNotFound, "Patient not found")
	case errors.Is(err, ErrNoFont), errors.Is(err, ErrDeliveryDisabled):
		web.Error(w, http.StatusServiceUnavailable, err.Error())
	default:
		web.Error(w, http.StatusInternalServerError, "Failed to produce report")
	}
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/assessments/{assessmentID}/report.pdf", h.Download)
	r.Post("/assessments/{assessmentID}/report", h.Send)
}
