// Package langdetect guesses the language of code block bodies so unlabeled
// fenced blocks can be given an info string before rendering.
//
// Detection uses go-enry (shebangs and its Bayesian classifier) backed by a
// handful of cheap textual heuristics that catch the short snippets enry
// tends to be unsure about.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/yaklabco/gomdfmt/pkg/mdast"
)

// classifierCandidates restricts enry's classifier to languages that show up
// in documentation often enough to be worth guessing.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Dockerfile",
}

// Detect returns an info-string tag for code, such as "go" or "bash", or ""
// when no language can be identified with confidence.
func Detect(code []byte) string {
	if len(bytes.TrimSpace(code)) == 0 {
		return ""
	}

	if lang, safe := enry.GetLanguageByShebang(code); safe {
		return infoTag(lang)
	}

	trimmed := bytes.TrimSpace(code)
	for _, h := range heuristics {
		if h.match(code, trimmed) {
			return h.tag
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(code, classifierCandidates); safe && lang != "" {
		return infoTag(lang)
	}

	return ""
}

// InferInfoStrings sets the info string of every fenced code block under root
// that has none and whose language Detect recognizes. Indented code blocks are
// left alone. It returns the number of blocks labeled.
func InferInfoStrings(root *mdast.Node) int {
	labeled := 0
	for _, code := range mdast.FindByKind(root, mdast.NodeCodeBlock) {
		attrs := code.Block.CodeBlock
		if attrs == nil || !attrs.Fenced || len(bytes.TrimSpace(attrs.Info)) > 0 {
			continue
		}
		if tag := Detect(attrs.Literal); tag != "" {
			attrs.Info = mdast.Chunk(tag)
			labeled++
		}
	}
	return labeled
}

// infoTag converts an enry language name to a fence tag.
func infoTag(lang string) string {
	switch lang {
	case "Shell":
		return "bash"
	case "C++":
		return "cpp"
	default:
		return strings.ToLower(lang)
	}
}
