package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdfmt/internal/logging"
	"github.com/yaklabco/gomdfmt/pkg/config"
	"github.com/yaklabco/gomdfmt/pkg/fsutil"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

// defaultConfigName is the file written by init when --output is not given.
const defaultConfigName = ".gomdfmt.yml"

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new gomdfmt configuration file",
		Long: `Create a new .gomdfmt.yml configuration file in the current directory
with the default settings.

Examples:
  gomdfmt init                       Create minimal .gomdfmt.yml
  gomdfmt init --full                Create config listing every key
  gomdfmt init --output custom.yml   Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd.Context(), flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Generate full template with every key and its default")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultConfigName, "Output file path")

	return cmd
}

func runInit(ctx context.Context, flags *initFlags) error {
	logger := logging.FromContext(ctx)

	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return usageError("file %q already exists; use --force to overwrite", flags.output)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, flags.output)
	}

	content := config.GenerateTemplate(config.TemplateOptions{Full: flags.full})

	if err := fsutil.WriteAtomic(ctx, absPath, content, configFilePermissions); err != nil {
		return &ExitError{Code: ExitIOError, Err: fmt.Errorf("write file: %w", err)}
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)
	logger.Info("customize your configuration by editing the file")

	return nil
}
