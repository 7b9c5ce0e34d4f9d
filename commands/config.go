package commands

import (
	"github.com/mobile-next/swipedrag/config"
)

// ConfigShowCommand returns the effective configuration read from path
func ConfigShowCommand(path string) *CommandResponse {
	conf, err := config.Load(path)
	if err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(map[string]interface{}{
		"path":   path,
		"config": conf,
	})
}

// ConfigInitCommand writes the default configuration to path
func ConfigInitCommand(path string, force bool) *CommandResponse {
	if err := config.Write(path, config.Default(), force); err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(map[string]interface{}{
		"message": "Wrote default configuration to " + path,
	})
}
