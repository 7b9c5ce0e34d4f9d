package commands

import (
	"github.com/mobile-next/swipedrag/devices"
	"github.com/mobile-next/swipedrag/utils"
)

// CommandResponse represents a standardized response format for all commands
type CommandResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(data interface{}) *CommandResponse {
	return &CommandResponse{
		Status: "ok",
		Data:   data,
	}
}

// NewErrorResponse creates an error response
func NewErrorResponse(err error) *CommandResponse {
	return &CommandResponse{
		Status: "error",
		Error:  err.Error(),
	}
}

// shutdownHook is set once at startup and collects cleanup for SIGINT/SIGTERM
var shutdownHook *devices.ShutdownHook

// SetShutdownHook sets the hook registry used by long running commands.
// This should be called once at application startup (main.go).
func SetShutdownHook(hook *devices.ShutdownHook) {
	shutdownHook = hook
}

// GetShutdownHook returns the current hook registry, or nil if unset
func GetShutdownHook() *devices.ShutdownHook {
	return shutdownHook
}

func registerShutdown(name string, fn func() error) {
	if shutdownHook != nil {
		shutdownHook.Register(name, fn)
		utils.Verbose("Registered shutdown hook %s (%d total)", name, shutdownHook.Count())
	}
}
