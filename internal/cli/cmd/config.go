package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/fruitwm/internal/cli/styles"
	"github.com/bnema/fruitwm/internal/infrastructure/config"
)

var (
	configInitForce    bool
	configSchemaOutput string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Locate, create, check, and describe the fruitwm configuration file.`,
}

var configPathCmd = &cobra.Command{
	Use:         "path",
	Short:       "Print the config file location",
	Annotations: map[string]string{annotationNoApp: "true"},
	RunE:        runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with every default",
	Long: `Write the default configuration, including the built-in keybindings,
to the config file. An existing file is left alone unless --force is given.`,
	Annotations: map[string]string{annotationNoApp: "true"},
	RunE:        runConfigInit,
}

var configCheckCmd = &cobra.Command{
	Use:         "check",
	Short:       "Validate the config file",
	Annotations: map[string]string{annotationNoApp: "true"},
	RunE:        runConfigCheck,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Long: `Print the JSON schema describing config.toml, for editor completion
with taplo or similar tools.`,
	Annotations: map[string]string{annotationNoApp: "true"},
	RunE:        runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configInitCmd, configCheckCmd, configSchemaCmd)
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config file")
	configSchemaCmd.Flags().StringVarP(&configSchemaOutput, "output", "o", "", "write the schema to a file instead of stdout")
}

// resolveConfigFile returns --config when set, else the XDG location.
func resolveConfigFile() (string, error) {
	if configFile != "" {
		return configFile, nil
	}
	return config.GetConfigFile()
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	renderer := styles.NewConfigRenderer(styles.NewTheme())
	path, err := resolveConfigFile()
	if err != nil {
		return err
	}
	_, statErr := os.Stat(path)
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderPath(path, statErr == nil))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	renderer := styles.NewConfigRenderer(styles.NewTheme())
	path, err := resolveConfigFile()
	if err != nil {
		return err
	}

	if _, statErr := os.Stat(path); statErr == nil && !configInitForce {
		fmt.Fprint(cmd.OutOrStdout(), renderer.RenderExists(path))
		return nil
	} else if statErr != nil && !errors.Is(statErr, os.ErrNotExist) {
		return statErr
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := config.WriteConfig(config.DefaultConfig(), path); err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderCreated(path))
	return nil
}

func runConfigCheck(cmd *cobra.Command, _ []string) error {
	renderer := styles.NewConfigRenderer(styles.NewTheme())

	mgr, err := config.NewManager(configFile)
	if err != nil {
		return err
	}
	if err := mgr.Load(); err != nil {
		fmt.Fprint(cmd.OutOrStdout(), renderer.RenderError(err))
		return errors.New("config check failed")
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderValid(mgr.GetConfigFile(), len(mgr.Get().Keybindings)))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	if configSchemaOutput != "" {
		return config.WriteSchemaFile(configSchemaOutput)
	}
	data, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
