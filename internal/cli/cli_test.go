package cli_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/yaklabco/gomdfmt/internal/cli"
	"github.com/yaklabco/gomdfmt/internal/configloader"
	"github.com/yaklabco/gomdfmt/pkg/fsutil"
	"github.com/yaklabco/gomdfmt/pkg/render/commonmark"
)

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}

	if cmd.Use != "gomdfmt" {
		t.Errorf("expected Use to be 'gomdfmt', got %q", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"format", "init", "version"} {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected subcommand %q to exist, got error: %v", name, err)
			continue
		}

		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}

	alias, _, err := cmd.Find([]string{"fmt"})
	if err != nil || alias.Name() != "format" {
		t.Errorf("expected fmt to alias format, got %v, %v", alias, err)
	}
}

func TestFormatCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	formatCmd, _, err := cmd.Find([]string{"format"})
	if err != nil {
		t.Fatalf("format command not found: %v", err)
	}

	expectedFlags := []string{
		"width",
		"hard-breaks",
		"display-width",
		"invalid-utf8",
		"infer-code-language",
		"write",
		"check",
		"diff",
		"jobs",
		"ignore",
		"ext",
		"no-backups",
		"follow-symlinks",
		"summary",
	}

	for _, flagName := range expectedFlags {
		if formatCmd.Flags().Lookup(flagName) == nil {
			t.Errorf("expected flag %q to exist on format command", flagName)
		}
	}

	for short, long := range map[string]string{"w": "write", "d": "diff"} {
		flag := formatCmd.Flags().ShorthandLookup(short)
		if flag == nil || flag.Name != long {
			t.Errorf("expected -%s to be shorthand for --%s", short, long)
		}
	}

	if err := formatCmd.Args(formatCmd, []string{"file1.md", "file2.md", "docs/"}); err != nil {
		t.Errorf("format command should accept arbitrary args, got error: %v", err)
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, flagName := range []string{"debug", "config", "color"} {
		if cmd.PersistentFlags().Lookup(flagName) == nil {
			t.Errorf("expected global flag %q to exist", flagName)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "1.2.3",
		Commit:  "abc123",
		Date:    "2024-01-01",
	}

	cmd := cli.NewRootCommand(info)
	cmd.SetArgs([]string{"version"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	for _, want := range []string{"version=1.2.3", "commit=abc123", "built=2024-01-01"} {
		if !bytes.Contains(out.Bytes(), []byte(want)) {
			t.Errorf("expected output to contain %q, got %q", want, out.String())
		}
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: cli.ExitSuccess},
		{name: "needs formatting", err: cli.ErrNeedsFormatting, want: cli.ExitNeedsFormatting},
		{name: "explicit code", err: &cli.ExitError{Code: cli.ExitInvalidUsage, Err: errors.New("bad")}, want: cli.ExitInvalidUsage},
		{name: "invalid config", err: fmt.Errorf("load: %w", configloader.ErrInvalidConfig), want: cli.ExitConfigError},
		{name: "invalid utf8", err: fmt.Errorf("a.md: %w", commonmark.ErrInvalidUTF8), want: cli.ExitConfigError},
		{name: "internal", err: commonmark.ErrInternalConsistency, want: cli.ExitInternalError},
		{name: "missing file", err: fmt.Errorf("stat: %w", os.ErrNotExist), want: cli.ExitIOError},
		{name: "modified on disk", err: errors.Join(errors.New("other"), fsutil.ErrModified), want: cli.ExitIOError},
		{name: "unknown", err: errors.New("boom"), want: cli.ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := cli.ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestFormatHelp(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	cmd.SetArgs([]string{"format", "--help"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("help failed: %v", err)
	}

	for _, want := range []string{
		"Usage:",
		"gomdfmt format [paths...]",
		"Aliases:",
		"--width int",
		"-w, --write",
		`(default "error")`,
		"Global Flags:",
		"--config string",
		"Environment:",
		"GOMDFMT_WIDTH",
	} {
		if !bytes.Contains(out.Bytes(), []byte(want)) {
			t.Errorf("expected help to contain %q, got:\n%s", want, out.String())
		}
	}
}

func TestRootHelpHasNoEnvironment(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	cmd.SetArgs([]string{"--help"})

	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("help failed: %v", err)
	}

	if !bytes.Contains(out.Bytes(), []byte("Commands:")) {
		t.Errorf("expected root help to list commands, got:\n%s", out.String())
	}
	if bytes.Contains(out.Bytes(), []byte("Environment:")) {
		t.Errorf("root help should not list environment variables, got:\n%s", out.String())
	}
}
