// Package api pkg/api/server.go exposes the HTTP surface: incident intake
// and lifecycle updates, check recording, and fleet status rollups.
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/monitorai/screenwatch/pkg/checks"
	"github.com/monitorai/screenwatch/pkg/db"
	"github.com/monitorai/screenwatch/pkg/incidents"
	"github.com/monitorai/screenwatch/pkg/models"
)

// FleetStatus is the rollup served at /api/status.
type FleetStatus struct {
	TotalScreens  int       `json:"total_screens"`
	ActiveScreens int       `json:"active_screens"`
	OpenIncidents int       `json:"open_incidents"`
	AverageUptime int       `json:"average_uptime"`
	LastUpdate    time.Time `json:"last_update"`
}

type uptimeResponse struct {
	ScreenID      int64 `json:"screen_id"`
	UptimePercent int   `json:"uptime_percent"`
}

type outcomeRequest struct {
	Successful bool `json:"successful"`
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

type APIServer struct {
	router    *mux.Router
	incidents incidents.Service
	checks    checks.Service
	store     db.Service
}

func NewAPIServer(incidentSvc incidents.Service, checkSvc checks.Service, store db.Service) *APIServer {
	s := &APIServer{
		router:    mux.NewRouter(),
		incidents: incidentSvc,
		checks:    checkSvc,
		store:     store,
	}
	s.setupRoutes()

	return s
}

func (s *APIServer) setupRoutes() {
	// Add CORS middleware
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	})

	s.router.HandleFunc("/api/incidents", s.createIncident).Methods("POST")
	s.router.HandleFunc("/api/incidents", s.getIncidents).Methods("GET")
	s.router.HandleFunc("/api/incidents/{id}", s.getIncident).Methods("GET")
	s.router.HandleFunc("/api/incidents/{id}", s.updateIncident).Methods("PATCH")

	s.router.HandleFunc("/api/checks", s.createCheck).Methods("POST")
	s.router.HandleFunc("/api/checks/{id}", s.getCheck).Methods("GET")
	s.router.HandleFunc("/api/checks/{id}", s.updateCheck).Methods("PATCH")

	s.router.HandleFunc("/api/screens", s.getScreens).Methods("GET")
	s.router.HandleFunc("/api/screens/{id}", s.getScreen).Methods("GET")
	s.router.HandleFunc("/api/screens/{id}/uptime", s.getScreenUptime).Methods("GET")

	s.router.HandleFunc("/api/status", s.getFleetStatus).Methods("GET")
}

func (s *APIServer) createIncident(w http.ResponseWriter, r *http.Request) {
	var req incidents.CreateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "")
		return
	}

	incident, err := s.incidents.CreateIncident(r.Context(), &req)
	if err != nil {
		var dup *incidents.DuplicateError
		if errors.As(err, &dup) {
			writeError(w, http.StatusConflict, dup.Error(), dup.Field)
			return
		}

		if errors.Is(err, incidents.ErrScreenRequired) {
			writeError(w, http.StatusBadRequest, err.Error(), "screen_id")
			return
		}

		log.Printf("API: failed to create incident: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error", "")

		return
	}

	writeJSON(w, http.StatusCreated, incident)
}

func (s *APIServer) getIncidents(w http.ResponseWriter, r *http.Request) {
	list, err := s.incidents.ListIncidents(r.Context())
	if err != nil {
		log.Printf("API: failed to list incidents: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error", "")

		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (s *APIServer) getIncident(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	incident, err := s.incidents.GetIncident(r.Context(), id)
	if err != nil {
		s.writeLookupError(w, err, "incident")
		return
	}

	writeJSON(w, http.StatusOK, incident)
}

func (s *APIServer) updateIncident(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req incidents.UpdateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "")
		return
	}

	incident, err := s.incidents.UpdateIncidentStatus(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, incidents.ErrInvalidStatus) {
			writeError(w, http.StatusBadRequest, err.Error(), "status")
			return
		}

		s.writeLookupError(w, err, "incident")

		return
	}

	writeJSON(w, http.StatusOK, incident)
}

func (s *APIServer) createCheck(w http.ResponseWriter, r *http.Request) {
	var req checks.CheckRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "")
		return
	}

	check, err := s.checks.RecordCheck(r.Context(), &req)
	if err != nil {
		if errors.Is(err, checks.ErrScreenRequired) {
			writeError(w, http.StatusBadRequest, err.Error(), "screen_id")
			return
		}

		log.Printf("API: failed to record check: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error", "")

		return
	}

	writeJSON(w, http.StatusCreated, check)
}

func (s *APIServer) getCheck(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	check, err := s.checks.GetCheck(r.Context(), id)
	if err != nil {
		s.writeLookupError(w, err, "check")
		return
	}

	writeJSON(w, http.StatusOK, check)
}

func (s *APIServer) updateCheck(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req outcomeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "")
		return
	}

	if err := s.checks.RecordCheckOutcome(r.Context(), id, req.Successful); err != nil {
		s.writeLookupError(w, err, "check")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *APIServer) getScreens(w http.ResponseWriter, _ *http.Request) {
	screens, err := s.store.ListScreens()
	if err != nil {
		log.Printf("API: failed to list screens: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error", "")

		return
	}

	writeJSON(w, http.StatusOK, screens)
}

func (s *APIServer) getScreen(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	screen, err := s.store.GetScreen(id)
	if err != nil {
		s.writeLookupError(w, err, "screen")
		return
	}

	writeJSON(w, http.StatusOK, screen)
}

func (s *APIServer) getScreenUptime(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	screen, err := s.store.GetScreen(id)
	if err != nil {
		s.writeLookupError(w, err, "screen")
		return
	}

	writeJSON(w, http.StatusOK, uptimeResponse{
		ScreenID:      screen.ID,
		UptimePercent: screen.UptimePercent,
	})
}

func (s *APIServer) getFleetStatus(w http.ResponseWriter, _ *http.Request) {
	screens, err := s.store.ListScreens()
	if err != nil {
		log.Printf("API: failed to list screens: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error", "")

		return
	}

	list, err := s.store.ListIncidents()
	if err != nil {
		log.Printf("API: failed to list incidents: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error", "")

		return
	}

	status := FleetStatus{
		TotalScreens: len(screens),
		LastUpdate:   time.Now(),
	}

	uptimeSum := 0

	for i := range screens {
		if screens[i].Status == models.ScreenActive {
			status.ActiveScreens++
		}

		uptimeSum += screens[i].UptimePercent
	}

	if len(screens) > 0 {
		status.AverageUptime = uptimeSum / len(screens)
	}

	for i := range list {
		if list[i].Status.Open() {
			status.OpenIncidents++
		}
	}

	writeJSON(w, http.StatusOK, status)
}

func (s *APIServer) writeLookupError(w http.ResponseWriter, err error, kind string) {
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, kind+" not found", "")
		return
	}

	log.Printf("API: %s lookup failed: %v", kind, err)
	writeError(w, http.StatusInternalServerError, "internal server error", "")
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id", "id")
		return 0, false
	}

	return id, true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("API: error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message, field string) {
	writeJSON(w, status, errorResponse{Error: message, Field: field})
}

func (s *APIServer) Router() http.Handler {
	return s.router
}

func (s *APIServer) Start(addr string) error {
	return http.ListenAndServe(addr, s.router)
}
