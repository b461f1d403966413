package domain

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/docfold/internal/model"
)

// DirectiveSigil introduces a directive inside a comment.
const DirectiveSigil = "@doc-"

// Directive names understood by the declaration visitor.
const (
	DirectiveTitle     = "title"
	DirectiveType      = "type"
	DirectiveGroup     = "group"
	DirectivePreferred = "preferred"
)

// A directive line may be prefixed by comment decoration ("//", " * ").
var directivePattern = regexp.MustCompile(`(?m)^[ \t/*]*` + regexp.QuoteMeta(DirectiveSigil) + `(\w+)[ \t]*(.*?)[ \t\r]*$`)

// ParseDirectives extracts the directives from raw comment text in source
// order. A nil comment or one without directives yields an empty slice.
func ParseDirectives(raw *string) []m.Directive {
	if raw == nil {
		return []m.Directive{}
	}

	matches := directivePattern.FindAllStringSubmatch(*raw, -1)
	directives := make([]m.Directive, 0, len(matches))

	for _, match := range matches {
		directives = append(directives, m.Directive{
			Name:  strings.ToLower(match[1]),
			Value: match[2],
		})
	}

	return directives
}

// DirectiveTag returns the comment tag name a directive appears under once
// the comment is structured, e.g. "doc-group".
func DirectiveTag(name string) string {
	return strings.TrimPrefix(DirectiveSigil, "@") + name
}

// IsDirectiveTag reports whether a comment tag was written as a directive.
func IsDirectiveTag(tag string) bool {
	return strings.HasPrefix(strings.ToLower(tag), strings.TrimPrefix(DirectiveSigil, "@"))
}
