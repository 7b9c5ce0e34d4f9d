package commands

import (
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/mobile-next/swipedrag/actuator"
	"github.com/mobile-next/swipedrag/config"
	"github.com/mobile-next/swipedrag/server"
	"github.com/mobile-next/swipedrag/utils"
)

type DoctorInfo struct {
	SwipedragVersion       string   `json:"swipedrag_version"`
	OS                     string   `json:"os"`
	OSVersion              string   `json:"os_version"`
	Backend                string   `json:"backend"`
	LibinputPath           string   `json:"libinput_path"`
	LibinputVersion        string   `json:"libinput_version,omitempty"`
	StdbufPath             string   `json:"stdbuf_path"`
	XdotoolPath            string   `json:"xdotool_path"`
	Display                string   `json:"display"`
	SessionType            string   `json:"session_type,omitempty"`
	ControlServerAvailable bool     `json:"control_server_available"`
	Warnings               []string `json:"warnings,omitempty"`
}

// lookPath resolves a configured tool, falling back to its default name
func lookPath(configured, fallback string) string {
	name := configured
	if name == "" {
		name = fallback
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return ""
	}
	return path
}

func getLibinputVersion(libinputPath string) string {
	if libinputPath == "" {
		return ""
	}

	cmd := exec.Command(libinputPath, "--version")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(output))
}

func getOSVersion() string {
	if runtime.GOOS != "linux" {
		return ""
	}

	// try reading /etc/os-release
	data, err := os.ReadFile("/etc/os-release")
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "PRETTY_NAME=") {
			return strings.Trim(strings.TrimPrefix(line, "PRETTY_NAME="), "\"")
		}
	}
	return ""
}

// collectWarnings lists the problems that prevent `run` from working
func collectWarnings(info DoctorInfo) []string {
	var warnings []string
	if info.LibinputPath == "" {
		warnings = append(warnings, "libinput not found (install libinput-tools or set libinput_path)")
	}
	if info.StdbufPath == "" {
		warnings = append(warnings, "stdbuf not found in PATH (install coreutils)")
	}
	usesXdotool := info.Backend == "" || strings.EqualFold(info.Backend, actuator.BackendXdotool)
	if usesXdotool && info.XdotoolPath == "" {
		warnings = append(warnings, "xdotool not found; use --backend xtest, install xdotool or set xdotool_path")
	}
	if info.Display == "" {
		warnings = append(warnings, "DISPLAY is not set; pointer commands need an X server")
	}
	if info.SessionType == "wayland" {
		warnings = append(warnings, "running under wayland; pointer commands only reach XWayland windows")
	}
	return warnings
}

// DoctorCommand performs system diagnostics against the tools named in conf
func DoctorCommand(version string, conf config.Config) *CommandResponse {
	info := DoctorInfo{
		SwipedragVersion: version,
		OS:               runtime.GOOS,
		OSVersion:        getOSVersion(),
		Backend:          conf.Backend,
		LibinputPath:     lookPath(conf.LibinputPath, "libinput"),
		StdbufPath:       lookPath("", "stdbuf"),
		XdotoolPath:      lookPath(conf.XdotoolPath, "xdotool"),
		Display:          os.Getenv("DISPLAY"),
		SessionType:      os.Getenv("XDG_SESSION_TYPE"),
	}

	info.LibinputVersion = getLibinputVersion(info.LibinputPath)
	// false usually means a tracker with --listen is already running
	info.ControlServerAvailable = utils.IsAddressAvailable(server.DefaultAddress)
	info.Warnings = collectWarnings(info)

	return NewSuccessResponse(info)
}
