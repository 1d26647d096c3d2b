package box

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// DefaultPadding is the number of blank columns on each side of the text.
const DefaultPadding = 2

// Options controls how a Document is drawn.
type Options struct {
	Style   Style
	Padding int
	// Title is drawn inside the top border. Empty means no title.
	Title string
	// BorderColor is a lipgloss color ("63", "#ff8800"). Empty draws plain
	// glyphs.
	BorderColor string
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Style:   DefaultStyle,
		Padding: DefaultPadding,
	}
}

// Validate checks the options without rendering anything.
func (o Options) Validate() error {
	if !o.Style.Valid() {
		return fmt.Errorf("%w %q (valid styles: %s)",
			ErrUnknownStyle, o.Style.String(), strings.Join(styleNames[:], ", "))
	}
	if o.Padding < 0 {
		return fmt.Errorf("%w: must be non-negative, got %d", ErrInvalidPadding, o.Padding)
	}
	// the title is drawn on the single top border row
	for i, r := range o.Title {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: control character %q at byte %d", ErrInvalidTitle, r, i)
		}
	}
	return nil
}

// Layout is the geometry of a rendered box. BoxWidth excludes the two
// vertical border columns.
type Layout struct {
	MaxWidth     int
	BoxWidth     int
	ContentWidth int
	Padding      int
}

// TitleWidth is the number of border columns a title needs: two leading
// horizontals plus the title with one space on each side.
func TitleWidth(title string) int {
	if title == "" {
		return 0
	}
	return 3 + utf8.RuneCountInString(title) + 1
}

// ComputeLayout derives the box geometry for doc. A title wider than the
// text widens the whole box, and the extra columns go to the content area.
func ComputeLayout(doc Document, opts Options) Layout {
	l := Layout{
		MaxWidth: doc.MaxWidth(),
		Padding:  opts.Padding,
	}
	l.BoxWidth = l.MaxWidth + 2*opts.Padding
	if tw := TitleWidth(opts.Title); tw > l.BoxWidth {
		l.BoxWidth = tw
	}
	l.ContentWidth = l.BoxWidth - 2*opts.Padding
	return l
}

// Render draws doc inside a border. Every row, borders included, is
// BoxWidth+2 characters wide and ends with a newline.
func Render(doc Document, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	doc = doc.normalize()

	l := ComputeLayout(doc, opts)
	g := opts.Style.Glyphs()
	paint := borderPainter(opts.BorderColor)

	var b strings.Builder
	pad := strings.Repeat(" ", l.Padding)

	if opts.Title == "" {
		b.WriteString(paint(g.TopLeft + strings.Repeat(g.Horizontal, l.BoxWidth) + g.TopRight))
		b.WriteByte('\n')
	} else {
		suffix := l.BoxWidth - 4 - utf8.RuneCountInString(opts.Title)
		b.WriteString(paint(g.TopLeft + strings.Repeat(g.Horizontal, 2)))
		b.WriteString(" " + opts.Title + " ")
		b.WriteString(paint(strings.Repeat(g.Horizontal, suffix) + g.TopRight))
		b.WriteByte('\n')

		// separator row between the title and the text
		b.WriteString(paint(g.Vertical))
		b.WriteString(strings.Repeat(" ", l.BoxWidth))
		b.WriteString(paint(g.Vertical))
		b.WriteByte('\n')
	}

	for _, line := range doc {
		fill := l.ContentWidth - utf8.RuneCountInString(line)
		if fill < 0 {
			fill = 0
		}
		b.WriteString(paint(g.Vertical))
		b.WriteString(pad)
		b.WriteString(line)
		b.WriteString(strings.Repeat(" ", fill))
		b.WriteString(pad)
		b.WriteString(paint(g.Vertical))
		b.WriteByte('\n')
	}

	b.WriteString(paint(g.BottomLeft + strings.Repeat(g.Horizontal, l.BoxWidth) + g.BottomRight))
	b.WriteByte('\n')

	return b.String(), nil
}

func borderPainter(color string) func(string) string {
	if color == "" {
		return func(s string) string { return s }
	}
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	return func(s string) string { return st.Render(s) }
}
