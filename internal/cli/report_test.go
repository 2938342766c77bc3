package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xylex-group/code-time/pkg/model"
)

func TestReportCmd(t *testing.T) {
	isolateConfig(t)

	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/users/event-log", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
	}))
	defer srv.Close()
	t.Setenv("CODETIME_PROXY_URL", srv.URL)

	out := mustRun(t, "report", "fileSaved", "src/../src/lib.rs", "--root", "/home/u/proj")

	assert.Contains(t, out, "Reported fileSaved for src/lib.rs")
	assert.Equal(t, "proj", gotBody["project"])
	assert.Equal(t, "src/lib.rs", gotBody["relativeFile"])
	assert.Equal(t, "rust", gotBody["language"])
	assert.Equal(t, "write", gotBody["operationType"])
}

func TestReportCmdDefaults(t *testing.T) {
	isolateConfig(t)

	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
	}))
	defer srv.Close()
	t.Setenv("CODETIME_PROXY_URL", srv.URL)

	out := mustRun(t, "report")

	assert.Contains(t, out, "Reported fileEdited for unknown")
	assert.Equal(t, "fileEdited", gotBody["eventType"])
	assert.Equal(t, "unknown", gotBody["relativeFile"])
	assert.Equal(t, "unknown", gotBody["language"])
}

func TestReportCmdUnknownEventType(t *testing.T) {
	isolateConfig(t)

	_, err := runCommand(t, "report", "fileRenamed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown event type: fileRenamed")
	for _, tag := range model.EventTypes {
		assert.Contains(t, err.Error(), tag)
	}
}

func TestReportCmdCompletion(t *testing.T) {
	t.Parallel()

	var reportCmd *cobra.Command
	for _, sub := range NewRootCmd().Commands() {
		if sub.Name() == "report" {
			reportCmd = sub
		}
	}
	require.NotNil(t, reportCmd)

	suggestions, _ := reportCmd.ValidArgsFunction(reportCmd, nil, "")
	assert.Equal(t, model.EventTypes, suggestions)

	// A second positional argument completes as a file path, not a tag.
	suggestions, _ = reportCmd.ValidArgsFunction(reportCmd, []string{"fileSaved"}, "")
	assert.Empty(t, suggestions)
}
