package config

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full writes every key with its default value.
	// If false, generates a minimal template with optional keys commented out.
	Full bool
}

// Header is written at the top of generated configuration files.
const Header = `# gomdfmt configuration
# See: https://github.com/yaklabco/gomdfmt`

// GenerateTemplate creates a configuration file template. Both variants
// decode to the values returned by NewConfig.
func GenerateTemplate(opts TemplateOptions) []byte {
	if opts.Full {
		return []byte(fullTemplate)
	}
	return []byte(minimalTemplate)
}

const minimalTemplate = Header + `

# Wrap column for paragraphs (0 = no wrapping; soft breaks are kept)
width: 0

# What to do with text that is not valid UTF-8: error or replace
# invalid_utf8: error

# Label unlabeled fenced code blocks with a detected language
# infer_code_language: false

# File patterns to ignore (glob patterns)
# ignore:
#   - "vendor/**"
#   - "node_modules/**"
`

const fullTemplate = Header + `
#
# This template lists every key with its default value.

# Wrap column for paragraphs (0 = no wrapping; soft breaks are kept)
width: 0

# Render hard line breaks as plain newlines; disables wrapping
hard_breaks: false

# Count columns in terminal cells (East Asian wide characters count as two)
display_width: false

# What to do with text that is not valid UTF-8: error or replace
invalid_utf8: error

# Label unlabeled fenced code blocks with a detected language
infer_code_language: false

# File patterns to ignore (glob patterns)
ignore: []

# File extensions treated as Markdown
extensions:
  - .md
  - .markdown

# Backup configuration for --write
backups:
  enabled: true
  mode: sidecar
`
