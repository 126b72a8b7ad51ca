package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// HandleRoot redirects to the dashboard
func (s *Server) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// HandleHealth provides health check endpoint
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	health := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"fetching":  s.Scheduler.Fetching(),
		"attempts":  s.Scheduler.Attempts(),
	}
	if lastErr := s.Scheduler.LastError(); lastErr != "" {
		health["last_error"] = lastErr
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(health)
}

// HandleState serves the current snapshot as JSON
func (s *Server) HandleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.snapshotView())
}

// HandleFrame serves the most recently rendered display frame as PNG
func (s *Server) HandleFrame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	frame := s.Scheduler.Frame()
	if frame == nil {
		http.Error(w, "No frame rendered yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(frame)
}

// HandleRefresh requests an immediate data fetch. Returns 409 when a
// fetch is already in flight, mirroring the on-screen refresh control
// which also never stacks fetches.
func (s *Server) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if !s.Scheduler.TriggerRefresh() {
		s.log.Info("Refresh rejected, fetch already in progress")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":  "Refresh already in progress",
			"status": "conflict",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "accepted",
	})
}

// HandleReports lists archived reports on GET and generates a new one
// on POST
func (s *Server) HandleReports(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listReports(w, r)
	case http.MethodPost:
		s.generateReport(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) listReports(w http.ResponseWriter, r *http.Request) {
	paths, err := s.Storage.List(r.Context(), "report", 50)
	if err != nil {
		s.log.Error("Failed to list reports", err)
		http.Error(w, "Failed to list reports", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"reports": paths,
		"count":   len(paths),
	})
}

func (s *Server) generateReport(w http.ResponseWriter, r *http.Request) {
	snap := s.Scheduler.Snapshot()
	if !snap.Valid {
		http.Error(w, "No data fetched yet", http.StatusServiceUnavailable)
		return
	}

	path, err := s.Generator.Generate(r.Context(), snap, time.Now().UTC())
	if err != nil {
		s.log.Error("Report generation failed", err)
		http.Error(w, "Report generation failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "ok",
		"report": "/files/" + path,
	})
}

// HandleFileProxy serves archived artifacts through the storage client,
// so reports work the same for local and GCS deployments
func (s *Server) HandleFileProxy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filePath, ok := sanitizePath(strings.TrimPrefix(r.URL.Path, "/files/"))
	if !ok {
		http.Error(w, "Invalid file path", http.StatusBadRequest)
		return
	}

	data, err := s.Storage.Get(r.Context(), filePath)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", contentTypeFor(filePath))
	w.Write(data)
}

func contentTypeFor(path string) string {
	switch {
	case strings.HasSuffix(path, ".png"):
		return "image/png"
	case strings.HasSuffix(path, ".html"):
		return "text/html; charset=utf-8"
	case strings.HasSuffix(path, ".md"):
		return "text/markdown; charset=utf-8"
	case strings.HasSuffix(path, ".json"):
		return "application/json"
	default:
		return "application/octet-stream"
	}
}
