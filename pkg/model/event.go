package model

import (
	"fmt"
	"runtime"
)

// Editor is the client name reported with every event.
const Editor = "CodeTime CLI"

// Event-type tags accepted by the proxy event log.
const (
	EventActivateFileChanged       = "activateFileChanged"
	EventEditorChanged             = "editorChanged"
	EventFileSaved                 = "fileSaved"
	EventFileAddedLine             = "fileAddedLine"
	EventFileCreated               = "fileCreated"
	EventFileEdited                = "fileEdited"
	EventChangeEditorSelection     = "changeEditorSelection"
	EventChangeEditorVisibleRanges = "changeEditorVisibleRanges"
)

// EventTypes lists every recognized event-type tag.
var EventTypes = []string{
	EventActivateFileChanged,
	EventEditorChanged,
	EventFileSaved,
	EventFileAddedLine,
	EventFileCreated,
	EventFileEdited,
	EventChangeEditorSelection,
	EventChangeEditorVisibleRanges,
}

// IsValidEventType reports whether tag is one of the recognized event types.
func IsValidEventType(tag string) bool {
	for _, t := range EventTypes {
		if t == tag {
			return true
		}
	}
	return false
}

// Event represents a single coding-activity event sent to the proxy.
// Field names match the proxy wire format: project, language, relativeFile,
// absoluteFile, editor, platform, eventTime, eventType, operationType.
type Event struct {
	Project       string `json:"project"`
	Language      string `json:"language"`
	RelativeFile  string `json:"relativeFile"`
	AbsoluteFile  string `json:"absoluteFile"`
	Editor        string `json:"editor"`
	Platform      string `json:"platform"`
	EventTime     int64  `json:"eventTime"`
	EventType     string `json:"eventType"`
	OperationType string `json:"operationType"`
}

// Platform returns the "<OS> <arch>" string reported with each event.
func Platform() string {
	os := runtime.GOOS
	switch os {
	case "darwin":
		os = "macOS"
	case "linux":
		os = "Linux"
	case "windows":
		os = "Windows"
	}
	arch := runtime.GOARCH
	switch arch {
	case "arm64":
		arch = "aarch64"
	case "amd64":
		arch = "x64"
	case "386":
		arch = "x86"
	}
	return fmt.Sprintf("%s %s", os, arch)
}
