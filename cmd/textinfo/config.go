package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/davetashner/textinfo/internal/config"
)

// Config command flags.
var configGlobal bool

// configCmd is the parent command for config subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and modify textinfo configuration",
	Long: `View and modify textinfo configuration.

textinfo reads .textinfo.yaml (or .textinfo.toml) in the project directory.
A global config at ~/.config/textinfo/config.yaml provides defaults and
TEXTINFO_* environment variables sit between the two. Flags override all.

Note: config set does a YAML round-trip and will not preserve comments.`,
}

// configGetCmd retrieves a configuration value by dot-notation key path.
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get the effective value of a configuration key.

Examples:
  textinfo config get tags
  textinfo config get languages.h
  textinfo config get --global output_format`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

// configSetCmd sets a configuration value.
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in .textinfo.yaml in the current directory,
or in the global config with --global. List values are comma separated.

Examples:
  textinfo config set output_format markdown
  textinfo config set tags todo,fixme,!
  textinfo config set languages.h cpp
  textinfo config set --global multiline_comments false`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

// configListCmd lists all configuration values with their source.
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Long: `List every set configuration value, annotated with the layer it comes
from: repo, env or global. Higher layers hide lower ones.`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

func init() {
	configGetCmd.Flags().BoolVar(&configGlobal, "global", false, "use global config only")
	configSetCmd.Flags().BoolVar(&configGlobal, "global", false, "write to global config")

	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
}

// resetConfigFlags resets config command flags for testing.
func resetConfigFlags() {
	configGlobal = false
	resetChanged(configGetCmd)
	resetChanged(configSetCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	var (
		cfg *config.Config
		err error
	)
	if configGlobal {
		cfg, err = config.LoadGlobal()
	} else {
		cfg, err = config.Resolve(".", nil, os.LookupEnv)
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	val, err := config.GetValue(cfg, args[0])
	if err != nil {
		return err
	}
	return printValue(cmd, val)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	keyPath, rawValue := args[0], args[1]

	if err := config.ValidateKeyPath(keyPath); err != nil {
		return err
	}
	if err := config.ValidateValue(keyPath, rawValue); err != nil {
		return err
	}

	targetPath := filepath.Join(".", config.FileName)
	if configGlobal {
		targetPath = config.GlobalConfigPath()
	} else if err := checkNoTOMLOnly("."); err != nil {
		return err
	}

	data, err := config.LoadRaw(targetPath)
	if err != nil {
		return fmt.Errorf("loading config file: %w", err)
	}
	if err := config.SetValue(data, keyPath, rawValue); err != nil {
		return fmt.Errorf("setting value: %w", err)
	}

	// Round-trip so a bad value never reaches disk.
	roundTrip, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	var validCfg config.Config
	if err := yaml.Unmarshal(roundTrip, &validCfg); err != nil {
		return fmt.Errorf("invalid config after set: %w", err)
	}
	if err := config.Validate(&validCfg); err != nil {
		return err
	}

	if err := config.WriteRaw(targetPath, data); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", keyPath, rawValue)
	return nil
}

// checkNoTOMLOnly refuses to create a YAML file that would shadow an
// existing TOML project config.
func checkNoTOMLOnly(dir string) error {
	_, yamlErr := cmdFS.Stat(filepath.Join(dir, config.FileName))
	if !errors.Is(yamlErr, fs.ErrNotExist) {
		return nil
	}
	if _, err := cmdFS.Stat(filepath.Join(dir, config.TOMLFileName)); err == nil {
		return fmt.Errorf("%s exists; edit it directly (config set only writes YAML)", config.TOMLFileName)
	}
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	if err := config.LoadDotEnv("."); err != nil {
		return err
	}
	globalCfg, err := config.LoadGlobal()
	if err != nil {
		return fmt.Errorf("loading global config: %w", err)
	}
	envCfg, err := config.FromEnv(os.LookupEnv)
	if err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}
	repoCfg, _, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("loading repo config: %w", err)
	}

	type entry struct {
		value  any
		source string
	}
	seen := make(map[string]entry)
	layers := []struct {
		source string
		cfg    *config.Config
	}{
		{"global", globalCfg},
		{"env", envCfg},
		{"repo", repoCfg},
	}
	for _, layer := range layers {
		flat, err := config.Flatten(layer.cfg)
		if err != nil {
			return err
		}
		for k, v := range flat {
			seen[k] = entry{value: v, source: layer.source}
		}
	}

	if len(seen) == 0 {
		_, _ = fmt.Fprintln(w, "No configuration set.")
		_, _ = fmt.Fprintln(w, "Run 'textinfo config set <key> <value>' to set values.")
		return nil
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	colors := map[string]*color.Color{
		"global": color.New(color.FgCyan),
		"env":    color.New(color.FgYellow),
		"repo":   color.New(color.FgGreen),
	}
	for _, k := range keys {
		e := seen[k]
		_, _ = fmt.Fprintf(w, "%s = %v %s\n", k, e.value, colors[e.source].Sprintf("(%s)", e.source))
	}
	return nil
}

// printValue outputs a value: scalars as plain text, maps and slices as YAML.
func printValue(cmd *cobra.Command, val any) error {
	switch v := val.(type) {
	case map[string]any, []any:
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprint(cmd.OutOrStdout(), string(data))
	default:
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), v)
	}
	return nil
}
