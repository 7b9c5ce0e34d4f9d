package commands

import (
	"encoding/json"
	"fmt"

	"github.com/mobile-next/swipedrag/server"
)

// StatusCommand queries the control server of a running tracker
func StatusCommand(addr string) *CommandResponse {
	result, err := server.Call(addr, "status")
	if err != nil {
		return NewErrorResponse(err)
	}

	var status server.Status
	if err := json.Unmarshal(result, &status); err != nil {
		return NewErrorResponse(fmt.Errorf("unexpected status response: %w", err))
	}
	return NewSuccessResponse(status)
}

// ReleaseCommand asks a running tracker to drop the current drag
func ReleaseCommand(addr string) *CommandResponse {
	if _, err := server.Call(addr, "release"); err != nil {
		return NewErrorResponse(err)
	}
	return NewSuccessResponse(map[string]interface{}{
		"message": "Pointer released",
	})
}
