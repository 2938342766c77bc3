package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xylex-group/code-time/pkg/model"
)

func TestOperationTypeForEvent(t *testing.T) {
	t.Parallel()

	writes := []string{
		model.EventFileSaved,
		model.EventFileEdited,
		model.EventFileCreated,
		model.EventFileAddedLine,
	}
	for _, tag := range writes {
		assert.Equal(t, "write", OperationTypeForEvent(tag), tag)
	}

	reads := []string{
		model.EventActivateFileChanged,
		model.EventEditorChanged,
		model.EventChangeEditorSelection,
		model.EventChangeEditorVisibleRanges,
		"somethingElse",
		"",
	}
	for _, tag := range reads {
		assert.Equal(t, "read", OperationTypeForEvent(tag), tag)
	}
}
