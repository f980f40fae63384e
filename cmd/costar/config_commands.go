package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"costar/internal/config"
	"costar/internal/logging"
	"costar/internal/preflight"
	"costar/internal/tmdb"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand())

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			dir := filepath.Dir(target)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create config directory %q: %w", dir, err)
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Set tmdb.api_key (or export TMDB_API_KEY) before running costar.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:         "validate",
		Short:       "Validate configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			cfg, path, exists, err := config.Load(ctx.configPath())
			if err != nil {
				fmt.Fprintln(out, renderStatusLine("Configuration", statusError, err.Error(), colorize))
				return fmt.Errorf("load config: %w", err)
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return fmt.Errorf("ensure directories: %w", err)
			}

			if exists {
				fmt.Fprintln(out, renderStatusLine("Config path", statusInfo, path, colorize))
			} else {
				fmt.Fprintln(out, renderStatusLine("Config path", statusWarn, path+" not found; defaults used", colorize))
			}
			fmt.Fprintln(out, renderStatusLine("State dir", statusInfo, cfg.Paths.StateDir, colorize))
			if cfg.History.Enabled {
				fmt.Fprintln(out, renderStatusLine("History", statusInfo, cfg.History.Path, colorize))
			} else {
				fmt.Fprintln(out, renderStatusLine("History", statusInfo, "disabled", colorize))
			}
			fmt.Fprintln(out, renderStatusLine("Configuration", statusOK, "valid", colorize))

			if !check {
				return nil
			}
			client, err := tmdb.NewFromConfig(cfg, logging.NewNop())
			if err != nil {
				return err
			}
			results := preflight.RunAll(cmd.Context(), cfg, client)
			for _, r := range results {
				kind := statusOK
				if !r.Passed {
					kind = statusError
				}
				fmt.Fprintln(out, renderStatusLine(r.Name, kind, r.Detail, colorize))
			}
			if preflight.Failed(results) {
				return errors.New("preflight checks failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Also check directory permissions, the history database and TMDB access")
	return cmd
}
