package commands

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"lx-registry-service/internal/config"
)

func TestMigrateDown_RejectsNonPositiveSteps(t *testing.T) {
	root := &cobra.Command{Use: "lxctl", SilenceUsage: true, SilenceErrors: true}
	InitMigrateCommands(root, &config.Config{})
	root.SetArgs([]string{"migrate", "down", "--steps", "0"})

	err := root.Execute()
	assert.ErrorContains(t, err, "--steps must be positive")
}
