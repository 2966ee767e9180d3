package assessment

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ricardomestre7/restauris-2.0-app/internal/catalog"
	"github.com/ricardomestre7/restauris-2.0-app/internal/platform/web"
	"github.com/ricardomestre7/restauris-2.0-app/internal/scoring"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type SubmitRequest struct {
	Answers scoring.Answers `json:"answers"`
}

type categoryResponse struct {
	ID        catalog.Category   `json:"id"`
	Label     string             `json:"label"`
	Questions []catalog.Question `json:"questions"`
}

func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	cat := h.svc.Catalog()
	out := make([]categoryResponse, 0, len(catalog.Categories))
	for _, c := range cat.Categories() {
		out = append(out, categoryResponse{ID: c, Label: c.Label(), Questions: cat.Questions(c)})
	}
	web.JSON(w, http.StatusOK, out)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	pid, ok := web.UUIDParam(w, r, "patientID")
	if !ok {
		return
	}
	var req SubmitRequest
	if !web.Decode(w, r, &req) {
		return
	}

	rec, err := h.svc.Submit(r.Context(), pid, req.Answers)
	if err != nil {
		h.fail(w, err)
		return
	}
	web.JSON(w, http.StatusCreated, rec)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	pid, ok := web.UUIDParam(w, r, "patientID")
	if !ok {
		return
	}

	history, err := h.svc.History(r.Context(), pid)
	if err != nil {
		h.fail(w, err)
		return
	}
	if history == nil {
		history = []Record{}
	}
	web.JSON(w, http.StatusOK, history)
}

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	pid, ok := web.UUIDParam(w, r, "patientID")
	if !ok {
		return
	}

	ov, err := h.svc.Overview(r.Context(), pid)
	if err != nil {
		h.fail(w, err)
		return
	}
	web.JSON(w, http.StatusOK, ov)
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	var verr *scoring.ValidationError
	switch {
	case errors.As(err, &verr):
		web.ErrorWithDetails(w, http.StatusUnprocessableEntity, verr.Error(), verr)
	case errors.Is(err, ErrCritical):
		web.Error(w, http.StatusInternalServerError, "Scoring failed, the assessment was not saved")
	case errors.Is(err, ErrNoPatient):
		web.Error(w, http.StatusNotFound, "Patient not found")
	case errors.Is(err, ErrNotFound):
		web.Error(w, http.StatusNotFound, "Assessment not found")
	default:
		web.Error(w, http.StatusInternalServerError, "Failed to process assessment")
	}
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/catalog", h.GetCatalog)
	r.Post("/patients/{patientID}/assessments", h.Submit)
	r.Get("/patients/{patientID}/assessments", h.List)
	r.Get("/patients/{patientID}/assessments/overview", h.GetOverview)
}
