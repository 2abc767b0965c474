package plugin

import (
	"bytes"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Placeholder parks the template's API token while plain names are rewritten.
const Placeholder = "REPLACEME_API"

// APIToken returns the export-macro token for a plugin name, e.g. "MyPlugin" -> "MYPLUGIN_API".
func APIToken(name string) string {
	return cases.Upper(language.Und).String(name + "_API")
}

// TokenSet holds the tokens used to rewrite one run's file contents.
type TokenSet struct {
	Placeholder string
	Source      string
	Target      string
}

// NewTokenSet derives the tokens for rewriting templateName into newName.
func NewTokenSet(templateName, newName string) TokenSet {
	return TokenSet{
		Placeholder: Placeholder,
		Source:      APIToken(templateName),
		Target:      APIToken(newName),
	}
}

// Rewriter substitutes plugin names inside file contents.
type Rewriter struct {
	templateName string
	newName      string
	tokens       TokenSet
}

// NewRewriter creates a Rewriter that turns templateName into newName.
func NewRewriter(templateName, newName string) *Rewriter {
	return &Rewriter{
		templateName: templateName,
		newName:      newName,
		tokens:       NewTokenSet(templateName, newName),
	}
}

// Tokens returns the token set in use.
func (r *Rewriter) Tokens() TokenSet {
	return r.tokens
}

// Rewrite applies, in order: API token to placeholder, template name to new
// name, placeholder to new API token. The API token contains the plain name,
// so it must be parked before plain names are replaced.
func (r *Rewriter) Rewrite(content []byte) []byte {
	out := bytes.ReplaceAll(content, []byte(r.tokens.Source), []byte(r.tokens.Placeholder))
	if r.templateName != "" {
		out = bytes.ReplaceAll(out, []byte(r.templateName), []byte(r.newName))
	}
	return bytes.ReplaceAll(out, []byte(r.tokens.Placeholder), []byte(r.tokens.Target))
}

// RewriteString is Rewrite for strings.
func (r *Rewriter) RewriteString(content string) string {
	return string(r.Rewrite([]byte(content)))
}
