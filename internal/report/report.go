// Package report assembles coding-activity event payloads from raw
// command or watcher input.
package report

import (
	"path/filepath"
	"time"

	"github.com/xylex-group/code-time/internal/classify"
	"github.com/xylex-group/code-time/pkg/model"
)

// BuildEvent constructs the event payload for one report. The relative
// path is sanitized and classified; project name and absolute path derive
// from the workspace root, or "unknown" when no root is known.
func BuildEvent(workspaceRoot, eventType, relativeFile string, now time.Time) model.Event {
	relative := classify.SanitizeRelativePath(relativeFile)

	project := "unknown"
	absolute := "unknown"
	if workspaceRoot != "" {
		project = classify.ProjectNameFromRoot(workspaceRoot)
		absolute = filepath.Join(workspaceRoot, filepath.FromSlash(relative))
	}

	return model.Event{
		Project:       project,
		Language:      classify.LanguageForFile(relative),
		RelativeFile:  relative,
		AbsoluteFile:  absolute,
		Editor:        model.Editor,
		Platform:      model.Platform(),
		EventTime:     now.UnixMilli(),
		EventType:     eventType,
		OperationType: classify.OperationTypeForEvent(eventType),
	}
}
