package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdfmt/pkg/config"
	"github.com/yaklabco/gomdfmt/pkg/fsutil"
	"github.com/yaklabco/gomdfmt/pkg/render/commonmark"
)

func TestConfigClone(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("empty config", func(t *testing.T) {
		c := &config.Config{}
		clone := c.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, c, clone)
	})

	t.Run("deep copies slices", func(t *testing.T) {
		original := &config.Config{
			Ignore:     []string{"vendor/**", "*.tmp.md"},
			Extensions: []string{".md"},
		}

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.Equal(t, original.Ignore, clone.Ignore)

		clone.Ignore[0] = "changed"
		clone.Extensions[0] = ".txt"
		assert.Equal(t, "vendor/**", original.Ignore[0])
		assert.Equal(t, ".md", original.Extensions[0])
	})

	t.Run("preserves all fields", func(t *testing.T) {
		original := &config.Config{
			Width:             72,
			HardBreaks:        true,
			DisplayWidth:      true,
			InvalidUTF8:       config.InvalidUTF8Replace,
			InferCodeLanguage: true,
			Backups:           config.BackupsConfig{Enabled: true, Mode: "none"},
			Jobs:              3,
			NoBackups:         true,
		}

		assert.Equal(t, original, original.Clone())
	})
}

func TestToYAML_RoundTrip(t *testing.T) {
	t.Parallel()

	original := config.NewConfig()
	original.Width = 80
	original.Ignore = []string{"vendor/**"}
	original.Jobs = 4

	data, err := original.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "width: 80\n")
	assert.Contains(t, string(data), "backups:\n  enabled: true\n  mode: sidecar\n")
	assert.NotContains(t, string(data), "jobs")

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)

	original.Jobs = 0
	assert.Equal(t, original, parsed)
}

func TestToYAMLWithHeader(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Width: 10}

	data, err := cfg.ToYAMLWithHeader("# header")
	require.NoError(t, err)
	assert.True(t, len(data) > 0)
	assert.Equal(t, "# header\n\n", string(data[:10]))

	plain, err := cfg.ToYAMLWithHeader("")
	require.NoError(t, err)
	direct, err := cfg.ToYAML()
	require.NoError(t, err)
	assert.Equal(t, direct, plain)
}

func TestDecodeInto(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
		want func(cfg *config.Config)
	}{
		{
			name: "empty document keeps everything",
			yaml: "   \n",
			want: func(*config.Config) {},
		},
		{
			name: "scalars override",
			yaml: "width: 60\ninfer_code_language: true\n",
			want: func(cfg *config.Config) {
				cfg.Width = 60
				cfg.InferCodeLanguage = true
			},
		},
		{
			name: "explicit false is honored",
			yaml: "backups:\n  enabled: false\n",
			want: func(cfg *config.Config) {
				cfg.Backups.Enabled = false
			},
		},
		{
			name: "lists replace",
			yaml: "extensions: [.mdx]\n",
			want: func(cfg *config.Config) {
				cfg.Extensions = []string{".mdx"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := config.NewConfig()
			require.NoError(t, config.DecodeInto(got, []byte(tt.yaml)))

			want := config.NewConfig()
			tt.want(want)
			assert.Equal(t, want, got)
		})
	}
}

func TestFromYAML_Invalid(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("width: [1, 2\n"))
	assert.Error(t, err)

	_, err = config.FromYAML([]byte("width: wide\n"))
	assert.Error(t, err)
}

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	for _, full := range []bool{false, true} {
		data := config.GenerateTemplate(config.TemplateOptions{Full: full})
		assert.Contains(t, string(data), config.Header)

		got := config.NewConfig()
		require.NoError(t, config.DecodeInto(got, data))

		want := config.NewConfig()
		if full {
			want.Ignore = []string{}
		}
		assert.Equal(t, want, got, "full=%v", full)
	}
}

func TestRenderOptions(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Width = 40
	cfg.DisplayWidth = true

	opts, err := cfg.RenderOptions()
	require.NoError(t, err)
	assert.Equal(t, commonmark.Options{Width: 40, DisplayWidth: true, InvalidUTF8: commonmark.DecodeStrict}, opts)

	cfg.InvalidUTF8 = "Replace"
	opts, err = cfg.RenderOptions()
	require.NoError(t, err)
	assert.Equal(t, commonmark.DecodeReplace, opts.InvalidUTF8)

	cfg.InvalidUTF8 = "drop"
	_, err = cfg.RenderOptions()
	require.Error(t, err)
	assert.ErrorIs(t, err, commonmark.ErrUnknownDecodePolicy)
}

func TestBackupMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		backups config.BackupsConfig
		noBack  bool
		want    fsutil.BackupMode
		wantErr bool
	}{
		{name: "default sidecar", backups: config.BackupsConfig{Enabled: true}, want: fsutil.BackupSidecar},
		{name: "disabled", backups: config.BackupsConfig{Enabled: false, Mode: "sidecar"}, want: fsutil.BackupNone},
		{name: "mode none", backups: config.BackupsConfig{Enabled: true, Mode: "none"}, want: fsutil.BackupNone},
		{name: "cli override", backups: config.BackupsConfig{Enabled: true}, noBack: true, want: fsutil.BackupNone},
		{name: "unknown mode", backups: config.BackupsConfig{Enabled: true, Mode: "xdg"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := &config.Config{Backups: tt.backups, NoBackups: tt.noBack}
			got, err := cfg.BackupMode()
			if tt.wantErr {
				assert.ErrorIs(t, err, fsutil.ErrUnknownBackupMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
