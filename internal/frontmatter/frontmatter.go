// Package frontmatter reads YAML frontmatter from markdown sources. Page
// metadata such as hide flags and toc depth overrides lives there.
package frontmatter

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter is returned when a frontmatter block opens but
// never closes.
var ErrMissingClosingDelimiter = errors.New("frontmatter: missing closing delimiter")

// Parse splits YAML frontmatter (`---` delimited) from a markdown document
// and decodes it into a metadata map. Documents without frontmatter yield an
// empty map and the full input as body. Both LF and CRLF newlines are
// accepted.
func Parse(content []byte) (meta map[string]any, body []byte, err error) {
	raw, body, err := split(content)
	if err != nil {
		return nil, nil, err
	}
	meta = map[string]any{}
	if len(raw) > 0 {
		if err := yaml.Unmarshal(raw, &meta); err != nil {
			return nil, nil, err
		}
		if meta == nil {
			meta = map[string]any{}
		}
	}
	return meta, body, nil
}

func split(content []byte) (frontmatter, body []byte, err error) {
	nl := "\n"
	if bytes.HasPrefix(content, []byte("---\r\n")) {
		nl = "\r\n"
	} else if !bytes.HasPrefix(content, []byte("---\n")) {
		return nil, content, nil
	}

	open := []byte("---" + nl)
	rest := content[len(open):]

	if bytes.HasPrefix(rest, open) {
		return nil, rest[len(open):], nil
	}

	closing := []byte(nl + "---" + nl)
	idx := bytes.Index(rest, closing)
	if idx < 0 {
		return nil, nil, ErrMissingClosingDelimiter
	}
	return rest[:idx+len(nl)], rest[idx+len(closing):], nil
}
