// Package api exposes HTTP handlers for the activities service.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"example.com/activities/internal/domain"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/activities", h.listActivities)
	mux.HandleFunc("/activities/", h.activityAction)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeDetail(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	activities, err := h.service.ListActivities(r.Context())
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	views := make(map[string]ActivityView, len(activities))
	for name, activity := range activities {
		views[name] = toActivityView(activity)
	}
	writeJSON(w, http.StatusOK, views)
}

// activityAction dispatches /activities/{name}/signup and
// /activities/{name}/unregister. The mux hands us the decoded path, so
// names with spaces arrive already unescaped.
func (h *Handler) activityAction(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/activities/")
	slash := strings.LastIndex(rest, "/")
	if slash <= 0 {
		writeDetail(w, http.StatusNotFound, "Not found")
		return
	}
	name, action := rest[:slash], rest[slash+1:]

	if r.Method != http.MethodPost {
		writeDetail(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	email := r.URL.Query().Get("email")

	switch action {
	case "signup":
		h.signup(w, r, name, email)
	case "unregister":
		h.unregister(w, r, name, email)
	default:
		writeDetail(w, http.StatusNotFound, "Not found")
	}
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request, name, email string) {
	message, err := h.service.Enroll(r.Context(), name, email)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: message})
}

func (h *Handler) unregister(w http.ResponseWriter, r *http.Request, name, email string) {
	message, err := h.service.Withdraw(r.Context(), name, email)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: message})
}

// writeDomainError maps domain sentinel errors onto the wire statuses
// and detail texts clients depend on.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		writeDetail(w, http.StatusNotFound, "Activity not found")
	case errors.Is(err, domain.ErrAlreadyRegistered):
		writeDetail(w, http.StatusBadRequest, "Student is already signed up")
	case errors.Is(err, domain.ErrActivityFull):
		writeDetail(w, http.StatusBadRequest, "Activity is full")
	case errors.Is(err, domain.ErrNotRegistered):
		writeDetail(w, http.StatusBadRequest, "Student is not signed up for this activity")
	case errors.Is(err, domain.ErrEmailRequired):
		writeDetail(w, http.StatusBadRequest, "Email is required")
	default:
		writeDetail(w, http.StatusInternalServerError, err.Error())
	}
}

// ActivityView exposes catalog details for one activity. The name is
// the key of the enclosing mapping and is not repeated in the body.
type ActivityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// MessageResponse is the confirmation body for signup and unregister.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func toActivityView(activity domain.Activity) ActivityView {
	return ActivityView{
		Description:     activity.Description,
		Schedule:        activity.Schedule,
		MaxParticipants: activity.MaxParticipants,
		Participants:    activity.Participants,
	}
}
