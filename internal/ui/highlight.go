package ui

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

var snippetStyle = styles.Get("monokai")

// lexerFor picks a lexer from the file name, then from the bare extension.
func lexerFor(filename string) chroma.Lexer {
	if l := lexers.Match(filepath.Base(filename)); l != nil {
		return l
	}
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		return nil
	}
	return lexers.Get(ext)
}

// Highlight colours code for a 256-colour terminal. Code in a language chroma
// does not know is returned as is.
func Highlight(code, filename string) string {
	lexer := lexerFor(filename)
	if lexer == nil {
		return code
	}

	tokens, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return code
	}

	var out strings.Builder
	if err := formatters.TTY256.Format(&out, snippetStyle, tokens); err != nil {
		return code
	}
	return strings.TrimSuffix(out.String(), "\n")
}
