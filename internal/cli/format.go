package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/gomdfmt/internal/configloader"
	"github.com/yaklabco/gomdfmt/internal/logging"
	"github.com/yaklabco/gomdfmt/internal/ui/pretty"
	"github.com/yaklabco/gomdfmt/pkg/config"
	"github.com/yaklabco/gomdfmt/pkg/diff"
	"github.com/yaklabco/gomdfmt/pkg/runner"
)

// stdinPath names standard input in messages and diffs.
const stdinPath = "<stdin>"

type formatFlags struct {
	width             int
	hardBreaks        bool
	displayWidth      bool
	invalidUTF8       string
	inferCodeLanguage bool
	write             bool
	check             bool
	diff              bool
	jobs              int
	ignore            []string
	extensions        []string
	noBackups         bool
	followSymlinks    bool
	summary           bool
}

func newFormatCommand() *cobra.Command {
	flags := &formatFlags{}

	cmd := &cobra.Command{
		Use:     "format [paths...]",
		Aliases: []string{"fmt"},
		Short:   "Format Markdown files as CommonMark",
		Long:    formatLongDescription,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, flags)
		},
		Annotations: map[string]string{annotationEnv: "true"},
	}

	addFormatFlags(cmd, flags)

	return cmd
}

const formatLongDescription = `Format Markdown files as normalized CommonMark.

By default, prints the formatted form of every .md and .markdown file under
the given paths (or the current directory) to stdout. With no paths and input
piped on stdin, formats stdin instead; "-" also names stdin.

Examples:
  gomdfmt format README.md             # Print formatted README
  gomdfmt format --check               # List files that need formatting
  gomdfmt format --diff docs/          # Show what would change
  gomdfmt format -w --width 80 .       # Rewrite files, wrapping at 80
  cat notes.md | gomdfmt format        # Format stdin`

func addFormatFlags(cmd *cobra.Command, flags *formatFlags) {
	cmd.Flags().IntVar(&flags.width, "width", 0, "wrap column (0 = no wrapping)")
	cmd.Flags().BoolVar(&flags.hardBreaks, "hard-breaks", false, "render hard line breaks as newlines; disables wrapping")
	cmd.Flags().BoolVar(&flags.displayWidth, "display-width", false, "count columns in terminal cells")
	cmd.Flags().StringVar(&flags.invalidUTF8, "invalid-utf8", config.InvalidUTF8Error,
		"handling of invalid UTF-8: error, replace")
	cmd.Flags().BoolVar(&flags.inferCodeLanguage, "infer-code-language", false,
		"label unlabeled fenced code blocks with a detected language")
	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "write result to the source files")
	cmd.Flags().BoolVar(&flags.check, "check", false, "list files whose formatting differs; exit 1 if any")
	cmd.Flags().BoolVarP(&flags.diff, "diff", "d", false, "print unified diffs; exit 1 if any")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.extensions, "ext", nil, "file extensions to format (default .md,.markdown)")
	cmd.Flags().BoolVar(&flags.noBackups, "no-backups", false, "disable backup creation when writing")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "descend into symlinked directories")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print a summary block after the run")
}

// mode picks the run mode from the mutually exclusive mode flags.
func (f *formatFlags) mode() (runner.Mode, error) {
	var set []string
	mode := runner.ModeStdout
	if f.write {
		set = append(set, "--write")
		mode = runner.ModeWrite
	}
	if f.check {
		set = append(set, "--check")
		mode = runner.ModeCheck
	}
	if f.diff {
		set = append(set, "--diff")
		mode = runner.ModeDiff
	}
	if len(set) > 1 {
		return runner.ModeStdout, usageError("%s cannot be combined", strings.Join(set, " and "))
	}
	return mode, nil
}

// overrides collects the flags that were set explicitly.
func (f *formatFlags) overrides(cmd *cobra.Command) *configloader.Overrides {
	changed := cmd.Flags().Changed
	o := &configloader.Overrides{
		Ignore:     f.ignore,
		Extensions: f.extensions,
		NoBackups:  f.noBackups,
	}
	if changed("width") {
		o.Width = &f.width
	}
	if changed("hard-breaks") {
		o.HardBreaks = &f.hardBreaks
	}
	if changed("display-width") {
		o.DisplayWidth = &f.displayWidth
	}
	if changed("invalid-utf8") {
		o.InvalidUTF8 = &f.invalidUTF8
	}
	if changed("infer-code-language") {
		o.InferCodeLanguage = &f.inferCodeLanguage
	}
	if changed("jobs") {
		o.Jobs = &f.jobs
	}
	return o
}

func runFormat(cmd *cobra.Command, args []string, flags *formatFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	mode, err := flags.mode()
	if err != nil {
		return err
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return &ExitError{Code: ExitIOError, Err: fmt.Errorf("get working directory: %w", err)}
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		Overrides:    flags.overrides(cmd),
	})
	if err != nil {
		return &ExitError{Code: ExitConfigError, Err: fmt.Errorf("load configuration: %w", err)}
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldConfig, loadResult.LoadedFrom)
	}

	cfg := loadResult.Config
	renderOpts, err := cfg.RenderOptions()
	if err != nil {
		return &ExitError{Code: ExitConfigError, Err: err}
	}
	backup, err := cfg.BackupMode()
	if err != nil {
		return &ExitError{Code: ExitConfigError, Err: err}
	}

	logger.Debug("configuration resolved",
		logging.FieldWidth, renderOpts.Width,
		logging.FieldMode, mode,
		logging.FieldJobs, cfg.Jobs)

	formatter := runner.NewFormatter(runner.FormatOptions{
		Render:            renderOpts,
		InferCodeLanguage: cfg.InferCodeLanguage,
	})

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	out := cmd.OutOrStdout()
	rep := &reporter{
		out:     out,
		errOut:  cmd.ErrOrStderr(),
		styles:  pretty.NewStyles(pretty.IsColorEnabled(colorMode, out)),
		workDir: workDir,
	}

	if readsStdin(args, cmd.InOrStdin()) {
		if mode == runner.ModeWrite {
			return usageError("--write cannot be used with standard input")
		}
		return formatStdin(ctx, cmd.InOrStdin(), formatter, mode, rep)
	}

	result, err := runner.New(formatter).Run(ctx, runner.Options{
		Paths:          args,
		WorkingDir:     workDir,
		Extensions:     cfg.Extensions,
		ExcludeGlobs:   cfg.Ignore,
		FollowSymlinks: flags.followSymlinks,
		Jobs:           cfg.Jobs,
		Mode:           mode,
		Backup:         backup,
	})
	if err != nil {
		return &ExitError{Code: classify(err), Err: err}
	}

	if err := rep.report(result, mode, flags.summary); err != nil {
		return &ExitError{Code: ExitIOError, Err: err}
	}

	if result.HasErrors() {
		joined := result.Err()
		return &ExitError{Code: classify(joined), Err: joined}
	}
	if mode.FailsOnChange() && result.HasChanges() {
		return ErrNeedsFormatting
	}
	return nil
}

// readsStdin reports whether the input comes from standard input: either
// "-" is the only path, or no path is given and stdin is not a terminal.
func readsStdin(args []string, stdin io.Reader) bool {
	if len(args) == 1 && args[0] == "-" {
		return true
	}
	if len(args) > 0 {
		return false
	}
	if f, ok := stdin.(*os.File); ok {
		return !term.IsTerminal(int(f.Fd()))
	}
	return stdin != nil
}

func formatStdin(ctx context.Context, stdin io.Reader, formatter *runner.Formatter, mode runner.Mode, rep *reporter) error {
	content, err := io.ReadAll(stdin)
	if err != nil {
		return &ExitError{Code: ExitIOError, Err: fmt.Errorf("read stdin: %w", err)}
	}

	formatted, err := formatter.Format(ctx, stdinPath, content)
	if err != nil {
		wrapped := fmt.Errorf("%s: %w", stdinPath, err)
		return &ExitError{Code: classify(wrapped), Err: wrapped}
	}

	changed := !bytes.Equal(content, formatted.Content)

	switch mode {
	case runner.ModeCheck:
		if changed {
			err = rep.print(rep.styles.FormatChangedFile(stdinPath))
		}
	case runner.ModeDiff:
		if changed {
			err = rep.print(rep.styles.FormatDiff(diff.Unified(stdinPath, content, formatted.Content)))
		}
	default:
		_, err = rep.out.Write(formatted.Content)
	}
	if err != nil {
		return &ExitError{Code: ExitIOError, Err: fmt.Errorf("write output: %w", err)}
	}

	if changed && mode.FailsOnChange() {
		return ErrNeedsFormatting
	}
	return nil
}

// reporter prints run outcomes: payload to out, status to errOut.
type reporter struct {
	out     io.Writer
	errOut  io.Writer
	styles  *pretty.Styles
	workDir string
}

func (r *reporter) print(s string) error {
	_, err := io.WriteString(r.out, s)
	return err
}

func (r *reporter) status(s string) {
	_, _ = io.WriteString(r.errOut, s)
}

// display returns path relative to the working directory when it lies below it.
func (r *reporter) display(path string) string {
	rel, err := filepath.Rel(r.workDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}

func (r *reporter) report(result *runner.Result, mode runner.Mode, summary bool) error {
	for _, file := range result.Files {
		if file.Err != nil {
			r.status(r.styles.FormatFileError(file.Err))
			continue
		}

		var err error
		switch mode {
		case runner.ModeStdout:
			_, err = r.out.Write(file.Formatted)
		case runner.ModeCheck:
			if file.Changed {
				err = r.print(r.styles.FormatChangedFile(r.display(file.Path)))
			}
		case runner.ModeDiff:
			if file.Diff != nil {
				file.Diff.Path = filepath.ToSlash(r.display(file.Path))
				err = r.print(r.styles.FormatDiff(file.Diff))
			}
		case runner.ModeWrite:
			if file.Written {
				r.status(r.styles.FormatWrittenFile(r.display(file.Path)))
			}
		}
		if err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	if mode != runner.ModeStdout {
		r.status(r.styles.FormatSummaryOneLine(result.Stats, mode))
	}
	if summary {
		r.status(r.styles.FormatSummary(result.Stats, mode))
	}
	return nil
}
