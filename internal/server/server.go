package server

import (
	"net/http"
	"strings"

	"solixmon/internal/config"
	"solixmon/internal/logger"
	"solixmon/internal/models"
	"solixmon/internal/reports"
	"solixmon/internal/scheduler"
	"solixmon/internal/storage"
)

// Server exposes the monitor state over HTTP: the live frame, the JSON
// snapshot, the dashboard and the report archive.
type Server struct {
	Config    *config.Config
	Scheduler *scheduler.Scheduler
	Generator *reports.Generator
	Storage   storage.Client
	log       *logger.Logger
}

// NewServer creates a server around an already running scheduler
func NewServer(cfg *config.Config, sched *scheduler.Scheduler, store storage.Client) *Server {
	return &Server{
		Config:    cfg,
		Scheduler: sched,
		Generator: reports.NewGenerator(store, cfg.PointsPerDay),
		Storage:   store,
		log:       logger.Global().WithComponent("server"),
	}
}

// SetupRoutes configures HTTP routes for the server
func (s *Server) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.HandleHealth)
	mux.HandleFunc("/state", s.HandleState)
	mux.HandleFunc("/frame.png", s.HandleFrame)
	mux.HandleFunc("/refresh", s.HandleRefresh)
	mux.HandleFunc("/dashboard", s.HandleDashboard)
	mux.HandleFunc("/reports", s.HandleReports)
	mux.HandleFunc("/files/", s.HandleFileProxy)
	mux.HandleFunc("/", s.HandleRoot)

	return mux
}

// Close cleans up server resources
func (s *Server) Close() error {
	if s.Storage != nil {
		return s.Storage.Close()
	}
	return nil
}

// snapshotView is a tiny indirection so handlers never touch the raw
// snapshot with its NaN scalars
func (s *Server) snapshotView() models.View {
	return s.Scheduler.Snapshot().View()
}

// sanitizePath rejects empty and traversal paths for the file proxy
func sanitizePath(p string) (string, bool) {
	if p == "" || strings.Contains(p, "..") {
		return "", false
	}
	return p, true
}
