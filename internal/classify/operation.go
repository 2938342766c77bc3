package classify

import "github.com/xylex-group/code-time/pkg/model"

// OperationTypeForEvent classifies an event-type tag as a "read" or "write"
// operation. Tags outside the known set count as reads.
func OperationTypeForEvent(eventType string) string {
	switch eventType {
	case model.EventFileSaved, model.EventFileEdited, model.EventFileCreated, model.EventFileAddedLine:
		return "write"
	}
	return "read"
}
