package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// defaultConfigTOML is the template written by `pdgclone init`. It mirrors
// internal/config.CloneConfig's three sections, commented out so the
// built-in defaults stay effective until a user opts in.
const defaultConfigTOML = `# pdgclone configuration.
# Uncomment and edit any setting to override the built-in default.

[input]
# benign_path = "benign.json"
# malicious_path = "malicious.json"
# benign_glob = "benign/*.json"
# malicious_glob = "malicious/*.json"

[output]
# format = "text"   # text, json, yaml, or csv
# path = ""         # write to stdout when empty
# no_open = false

[batch]
# max_concurrency = 4
# timeout_seconds = 30
`

// InitCommand represents the init command.
type InitCommand struct {
	force      bool
	configPath string
}

// NewInitCommand creates a new init command.
func NewInitCommand() *InitCommand {
	return &InitCommand{
		force:      false,
		configPath: ".pdgclone.toml",
	}
}

// CreateCobraCommand creates the cobra command for configuration initialization.
func (i *InitCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a pdgclone configuration file",
		Long: `Initialize writes a .pdgclone.toml file in the current directory
with commented-out defaults for the [input], [output], and [batch]
sections, so a project can pin its PDG paths and preferred output
format without repeating flags on every invocation.

Examples:
  # Create .pdgclone.toml in the current directory
  pdgclone init

  # Create a config file with a custom name
  pdgclone init --config myconfig.toml

  # Overwrite an existing configuration file
  pdgclone init --force`,
		RunE: i.runInit,
	}

	cmd.Flags().BoolVarP(&i.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&i.configPath, "config", "c", ".pdgclone.toml", "Configuration file path")

	return cmd
}

func (i *InitCommand) runInit(cmd *cobra.Command, args []string) error {
	configPath, err := filepath.Abs(i.configPath)
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil && !i.force {
		return fmt.Errorf("configuration file already exists: %s\nUse --force to overwrite", configPath)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(configPath, []byte(defaultConfigTOML), 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	relPath, err := filepath.Rel(".", configPath)
	if err != nil {
		relPath = configPath
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created: %s\n", relPath)
	fmt.Fprintf(cmd.OutOrStdout(), "\nTo customize pdgclone for your project:\n")
	fmt.Fprintf(cmd.OutOrStdout(), "  1. Edit %s\n", relPath)
	fmt.Fprintf(cmd.OutOrStdout(), "  2. Uncomment and modify settings as needed\n")
	fmt.Fprintf(cmd.OutOrStdout(), "  3. Run 'pdgclone detect --config %s' to use your configuration\n", relPath)

	return nil
}

// NewInitCmd creates and returns the init cobra command.
func NewInitCmd() *cobra.Command {
	initCommand := NewInitCommand()
	return initCommand.CreateCobraCommand()
}
