package langdetect

import (
	"bytes"
)

// heuristic recognizes one language from strongly indicative text.
type heuristic struct {
	tag   string
	match func(code, trimmed []byte) bool
}

// heuristics are tried in order; earlier entries are more specific.
var heuristics = []heuristic{
	{"go", looksLikeGo},
	{"python", looksLikePython},
	{"html", looksLikeHTML},
	{"json", looksLikeJSON},
	{"dockerfile", looksLikeDockerfile},
	{"sql", looksLikeSQL},
	{"rust", looksLikeRust},
	{"javascript", looksLikeJavaScript},
	{"yaml", looksLikeYAML},
}

func containsAny(code []byte, needles ...string) bool {
	for _, needle := range needles {
		if bytes.Contains(code, []byte(needle)) {
			return true
		}
	}
	return false
}

func looksLikeGo(_, trimmed []byte) bool {
	return bytes.HasPrefix(trimmed, []byte("package ")) ||
		(bytes.Contains(trimmed, []byte("func ")) && bytes.Contains(trimmed, []byte(":=")))
}

func looksLikePython(code, trimmed []byte) bool {
	if bytes.Contains(code, []byte("def ")) && bytes.Contains(code, []byte("):")) {
		return true
	}
	// Go groups imports with "import (".
	if bytes.Contains(code, []byte("import ")) && !bytes.Contains(code, []byte("import (")) &&
		(bytes.Contains(code, []byte("from ")) || bytes.HasPrefix(trimmed, []byte("import "))) {
		return true
	}
	return containsAny(code, "__name__", "__main__")
}

func looksLikeHTML(_, trimmed []byte) bool {
	lower := bytes.ToLower(trimmed)
	return containsAny(lower, "<!doctype html", "<html", "<head>", "<body>")
}

func looksLikeJSON(_, trimmed []byte) bool {
	return (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
		bytes.Contains(trimmed, []byte(`"`))
}

func looksLikeDockerfile(code, trimmed []byte) bool {
	return bytes.HasPrefix(trimmed, []byte("FROM ")) ||
		(bytes.Contains(code, []byte("\nFROM ")) && bytes.Contains(code, []byte("\nRUN "))) ||
		(bytes.Contains(code, []byte("WORKDIR ")) && bytes.Contains(code, []byte("COPY ")))
}

func looksLikeSQL(_, trimmed []byte) bool {
	upper := bytes.ToUpper(trimmed)
	for _, keyword := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
		if bytes.HasPrefix(upper, []byte(keyword)) {
			return true
		}
	}
	return false
}

func looksLikeRust(code, _ []byte) bool {
	return containsAny(code, "fn main()", "println!", "let mut ")
}

func looksLikeJavaScript(code, _ []byte) bool {
	return containsAny(code, "=>", "const ", "let ", "console.log")
}

// looksLikeYAML counts "key: value" lines and top-level sequence items.
func looksLikeYAML(code, _ []byte) bool {
	pairs := 0
	for line := range bytes.SplitSeq(code, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if bytes.Contains(line, []byte(": ")) && !bytes.HasPrefix(line, []byte(`"`)) &&
			!bytes.ContainsAny(line, "({") {
			pairs++
		}
		if bytes.HasPrefix(line, []byte("- ")) {
			pairs++
		}
	}
	return pairs >= 2
}
