package model

import (
	"strings"
)

// Tag is a named block of a comment, written as "@name text".
type Tag struct {
	Name string `yaml:"name" json:"name"`
	Text string `yaml:"text,omitempty" json:"text,omitempty"`
}

// Comment is the structured form of a doc comment.
type Comment struct {
	ShortText string `yaml:"short,omitempty" json:"short,omitempty"`
	Text      string `yaml:"text,omitempty" json:"text,omitempty"`
	Tags      []Tag  `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// ParseComment splits plain doc text into prose and tags. A line starting
// with '@' opens a tag; following lines belong to it until the next tag.
// It returns nil when the text is blank.
func ParseComment(text string) *Comment {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var (
		prose []string
		tags  []Tag
		cur   *Tag
	)

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "@") && len(trimmed) > 1 {
			name, rest, _ := strings.Cut(trimmed[1:], " ")
			tags = append(tags, Tag{Name: name, Text: strings.TrimSpace(rest)})
			cur = &tags[len(tags)-1]

			continue
		}

		if cur != nil {
			if trimmed != "" {
				cur.Text = strings.TrimSpace(cur.Text + "\n" + trimmed)
			}

			continue
		}

		prose = append(prose, strings.TrimRight(line, " \t"))
	}

	body := strings.TrimSpace(strings.Join(prose, "\n"))
	short, rest, _ := strings.Cut(body, "\n\n")

	return &Comment{
		ShortText: strings.TrimSpace(short),
		Text:      strings.TrimSpace(rest),
		Tags:      tags,
	}
}

// HasTag reports whether a tag with the given name is present.
func (c *Comment) HasTag(name string) bool {
	if c == nil {
		return false
	}

	for _, tag := range c.Tags {
		if tag.Name == name {
			return true
		}
	}

	return false
}

// RemoveTags drops every tag with the given name. A nil comment is left alone.
func (c *Comment) RemoveTags(name string) {
	c.RemoveTagsFunc(func(tag string) bool { return tag == name })
}

// RemoveTagsFunc drops every tag for which drop returns true.
func (c *Comment) RemoveTagsFunc(drop func(name string) bool) {
	if c == nil {
		return
	}

	kept := c.Tags[:0]
	for _, tag := range c.Tags {
		if !drop(tag.Name) {
			kept = append(kept, tag)
		}
	}

	clear(c.Tags[len(kept):])

	if len(kept) == 0 {
		kept = nil
	}

	c.Tags = kept
}

// Clone returns a deep copy of c.
func (c *Comment) Clone() *Comment {
	if c == nil {
		return nil
	}

	clone := *c
	clone.Tags = append([]Tag(nil), c.Tags...)

	return &clone
}

func (c *Comment) String() string {
	if c == nil {
		return ""
	}

	var parts []string
	if c.ShortText != "" {
		parts = append(parts, c.ShortText)
	}

	if c.Text != "" {
		parts = append(parts, c.Text)
	}

	for _, tag := range c.Tags {
		parts = append(parts, strings.TrimSpace("@"+tag.Name+" "+tag.Text))
	}

	return strings.Join(parts, "\n\n")
}
