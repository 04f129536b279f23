package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/phobologic/docaudit/internal/config"
)

const configHeader = `# docaudit configuration. Missing keys keep the defaults below.
# workers: 0 uses one worker per CPU.
`

// newInitCmd implements the `docaudit init` subcommand, which writes a starter
// config file holding every default.
func newInitCmd(opts *globalOptions) *cobra.Command {
	var dryRun, force bool
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a starter " + config.DefaultFileName,
		Long: `Write a config file holding every tunable with its default value.

path defaults to ./` + config.DefaultFileName + `. When path is a directory the file is
created inside it. An existing file is left alone unless --force is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			content, err := generateConfig()
			if err != nil {
				return err
			}

			if dryRun {
				_, _ = fmt.Fprint(opts.stdout, content)
				return nil
			}

			path := config.DefaultFileName
			if len(args) > 0 {
				path = configPath(args[0])
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("checking %s: %w", path, err)
			}

			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}

			opts.logger.Info("wrote config", "path", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the file instead of writing it")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

// configPath resolves the init target, placing the default file name inside
// directories.
func configPath(arg string) string {
	if info, err := os.Stat(arg); err == nil && info.IsDir() {
		return filepath.Join(arg, config.DefaultFileName)
	}
	return arg
}

// generateConfig returns the starter config file content.
func generateConfig() (string, error) {
	data, err := config.Default().Marshal()
	if err != nil {
		return "", fmt.Errorf("encoding default config: %w", err)
	}
	return configHeader + string(data), nil
}
