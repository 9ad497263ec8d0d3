package loader

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/agentgraph-dev/agentgraph/kg"
)

// Text loads triples from a file with one triple per line, fields split by
// a separator:
//
//	Artificial Intelligence | includes | Machine Learning
//	# comment lines and blank lines are skipped
type Text struct {
	path          string
	separator     string
	commentPrefix string
}

// TextOption configures a Text loader.
type TextOption func(*Text)

// WithSeparator sets the field separator, "|" by default.
func WithSeparator(sep string) TextOption {
	return func(l *Text) {
		l.separator = sep
	}
}

// WithCommentPrefix sets the prefix marking comment lines, "#" by default.
// An empty prefix disables comment skipping.
func WithCommentPrefix(prefix string) TextOption {
	return func(l *Text) {
		l.commentPrefix = prefix
	}
}

// NewText creates a text loader for the given file.
func NewText(path string, opts ...TextOption) *Text {
	l := &Text{
		path:          path,
		separator:     "|",
		commentPrefix: "#",
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load parses the file line by line. A non-comment line that does not
// split into exactly three fields is an error naming the line number.
func (l *Text) Load(ctx context.Context) ([]kg.Triple, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", l.path, err)
	}
	defer file.Close()

	var triples []kg.Triple
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if l.commentPrefix != "" && strings.HasPrefix(line, l.commentPrefix) {
			continue
		}

		fields := strings.Split(line, l.separator)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%s:%d: expected 3 fields separated by %q, got %d",
				l.path, lineNo, l.separator, len(fields))
		}
		triples = append(triples, kg.Triple{
			Subject:   strings.TrimSpace(fields[0]),
			Predicate: strings.TrimSpace(fields[1]),
			Object:    strings.TrimSpace(fields[2]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", l.path, err)
	}
	return triples, nil
}
