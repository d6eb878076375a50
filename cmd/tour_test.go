package cmd

import (
	"testing"

	"github.com/PolarWolf314/cloudsafe/internal/content"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTour_NoPausePrintsEveryPanel(t *testing.T) {
	setupTestEnvironment(t)
	panels := content.MustLoad().Panels

	output, err := runCLI(t, "tour", "--no-pause")
	require.NoError(t, err)

	for i, panel := range panels {
		if i > 0 {
			assert.Contains(t, output, panel.Title)
		}
		if panel.Command != "" {
			assert.Contains(t, output, panel.Command)
		}
	}
	assert.Contains(t, output, "8/8")
}
