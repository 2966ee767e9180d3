package phase

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

type TransitionRequest struct {
	PhaseNumber int `json:"phase_number"`
}

type stateResponse struct {
	State
	Label string `json:"label"`
}

func present(s State) stateResponse {
	return stateResponse{State: s, Label: s.Number.String()}
}

func (h *Handler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	pid, ok := web.UUIDParam(w, r, "patientID")
	if !ok {
		return
	}

	st, err := h.svc.Current(r.Context(), pid)
	if err != nil {
		h.fail(w, err)
		return
	}
	web.JSON(w, http.StatusOK, present(*st))
}

func (h *Handler) Transition(w http.ResponseWriter, r *http.Request) {
	pid, ok := web.UUIDParam(w, r, "patientID")
	if !ok {
		return
	}
	var req TransitionRequest
	if !web.Decode(w, r, &req) {
		return
	}

	res, err := h.svc.RequestTransition(r.Context(), pid, Phase(req.PhaseNumber))
	if err != nil {
		h.fail(w, err)
		return
	}

	body := map[string]any{
		"changed": res.Changed,
		"state":   present(res.State),
	}
	if res.Previous != nil {
		body["previous"] = present(*res.Previous)
	}
	web.JSON(w, http.StatusOK, body)
}

func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	pid, ok := web.UUIDParam(w, r, "patientID")
	if !ok {
		return
	}

	states, err := h.svc.History(r.Context(), pid)
	if err != nil {
		h.fail(w, err)
		return
	}
	out := make([]stateResponse, len(states))
	for i, s := range states {
		out[i] = present(s)
	}
	web.JSON(w, http.StatusOK, out)
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidPhase):
		web.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNoPatient):
		web.Error(w, http.StatusNotFound, "Patient not found")
	case errors.Is(err, ErrConflict):
		web.Error(w, http.StatusConflict, "Phase was changed by another request, reload and retry")
	default:
		web.Error(w, http.StatusInternalServerError, "Failed to process phase")
	}
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/patients/{patientID}/phase", h.GetCurrent)
	r.Put("/patients/{patientID}/phase", h.Transition)
	r.Get("/patients/{patientID}/phase/history", h.GetHistory)
}
