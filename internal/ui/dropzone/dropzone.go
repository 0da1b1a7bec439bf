// Package dropzone turns a terminal drag-and-drop payload into file names.
//
// Terminals deliver a dropped file as a bracketed paste of its path. Paths
// may be shell-escaped ("my\ file.pdf"), quoted ('my file.pdf'), or sent as
// file:// URIs, one per line. Only the base name of each path is kept; the
// file itself is never opened.
package dropzone

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"
)

// Parse returns the base names of the files in payload, in order.
// Duplicates are kept.
func Parse(payload string) []string {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil
	}
	tokens, err := shellquote.Split(payload)
	if err != nil {
		// Unbalanced quote, e.g. a name containing an apostrophe.
		tokens = strings.Fields(payload)
	}

	var names []string
	for _, tok := range tokens {
		if name := baseName(tok); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func baseName(tok string) string {
	tok = strings.TrimSpace(tok)
	if strings.HasPrefix(tok, "file://") {
		u, err := url.Parse(tok)
		if err != nil {
			return ""
		}
		tok = u.Path
	}
	tok = strings.TrimRight(tok, "/")
	if tok == "" {
		return ""
	}
	name := filepath.Base(tok)
	if name == "." || name == string(filepath.Separator) {
		return ""
	}
	return name
}
