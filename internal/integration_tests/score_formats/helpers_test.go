package integration_tests

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/orchestraigo/internal/app"
	"github.com/specialistvlad/orchestraigo/internal/conductor"
	"github.com/specialistvlad/orchestraigo/internal/registry"
	"github.com/specialistvlad/orchestraigo/internal/testutil"
	"github.com/stretchr/testify/require"
)

// harnessResult holds the outcomes of an integration test run.
type harnessResult struct {
	LogOutput string
	Report    *conductor.Report
	Err       error
	App       *app.App
}

// runScore writes files into a temporary directory, starts the app on it and
// performs once. Startup panics are returned as errors.
func runScore(t *testing.T, files map[string]string, cfg app.Config, modules ...registry.Module) *harnessResult {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	cfg.ScorePaths = []string{dir}
	cfg.LogLevel = "debug"
	appCfg, err := app.NewConfig(cfg)
	require.NoError(t, err)

	logBuffer := &testutil.SafeBuffer{}
	t.Cleanup(func() {
		if os.Getenv("ORCHESTRAIGO_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	var testApp *app.App
	var panicErr any
	func() {
		defer func() { panicErr = recover() }()
		testApp = app.NewApp(logBuffer, appCfg, nil, modules...)
	}()
	if panicErr != nil {
		return &harnessResult{LogOutput: logBuffer.String(), Err: fmt.Errorf("application startup panicked | %v", panicErr)}
	}
	t.Cleanup(func() { require.NoError(t, testApp.Close()) })

	report, runErr := testApp.Run(context.Background())
	return &harnessResult{LogOutput: logBuffer.String(), Report: report, Err: runErr, App: testApp}
}
