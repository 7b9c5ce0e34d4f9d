package server

import (
	"encoding/json"
	"fmt"
	"time"
)

// Status describes the running drag tracker
type Status struct {
	Device      string  `json:"device"`
	Backend     string  `json:"backend"`
	Mode        string  `json:"mode"`
	Serial      uint64  `json:"serial"`
	Scale       float64 `json:"scale"`
	CommitDelay float64 `json:"commit_delay"`
	Uptime      string  `json:"uptime"`
	SourceID    string  `json:"source_id"`
}

// Controller is what the server exposes of a running tracker
type Controller interface {
	Status() Status
	// Release force-ends the current drag
	Release()
	// Shutdown stops the tracker
	Shutdown()
}

// HandlerFunc is the signature for JSON-RPC method handlers
type HandlerFunc func(params json.RawMessage) (interface{}, error)

// methodRegistry maps method names to handler functions, shared by
// the HTTP and WebSocket transports
func methodRegistry(ctrl Controller, started time.Time) map[string]HandlerFunc {
	return map[string]HandlerFunc{
		"status": func(json.RawMessage) (interface{}, error) {
			status := ctrl.Status()
			status.Uptime = time.Since(started).Round(time.Second).String()
			return status, nil
		},
		"release": func(json.RawMessage) (interface{}, error) {
			ctrl.Release()
			return okResponse, nil
		},
		"server.shutdown": func(json.RawMessage) (interface{}, error) {
			// respond before the tracker goes away
			go ctrl.Shutdown()
			return okResponse, nil
		},
	}
}

func (s *Server) execute(method string, params json.RawMessage) (interface{}, error) {
	handler, exists := s.methods[method]
	if !exists {
		return nil, fmt.Errorf("method not found: %s", method)
	}
	return handler(params)
}
