package box

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Document is the ordered list of lines to draw inside a box.
type Document []string

// ReadDocument reads newline-delimited lines from r. The line terminator
// (\n or \r\n) is removed. An empty input yields a single empty line.
func ReadDocument(r io.Reader) (Document, error) {
	br := bufio.NewReader(r)
	var doc Document

	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			doc = append(doc, line)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
	}

	return doc.normalize(), nil
}

// LoadDocument reads lines from the file at path, or from stdin when path is
// empty. The file is closed as soon as it has been read.
func LoadDocument(path string, stdin io.Reader) (Document, error) {
	if path == "" {
		return ReadDocument(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileOpen, err)
	}
	defer f.Close()

	doc, err := ReadDocument(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileOpen, err)
	}
	return doc, nil
}

// MaxWidth returns the widest line length in characters. Wide glyphs count
// as one character.
func (d Document) MaxWidth() int {
	w := 0
	for _, line := range d {
		if n := utf8.RuneCountInString(line); n > w {
			w = n
		}
	}
	return w
}

func (d Document) normalize() Document {
	if len(d) == 0 {
		return Document{""}
	}
	return d
}
