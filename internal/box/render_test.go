package box

import (
	"errors"
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestRender_Simple(t *testing.T) {
	got, err := Render(Document{"hello", "hi"}, DefaultOptions())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	want := "┌─────────┐\n" +
		"│  hello  │\n" +
		"│  hi     │\n" +
		"└─────────┘\n"
	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRender_Styles(t *testing.T) {
	tests := []struct {
		style Style
		want  string
	}{
		{StyleSimple, "┌──┐\n│ab│\n└──┘\n"},
		{StyleDouble, "╔══╗\n║ab║\n╚══╝\n"},
		{StyleRounded, "╭──╮\n│ab│\n╰──╯\n"},
		{StyleThick, "┏━━┓\n┃ab┃\n┗━━┛\n"},
		{StyleASCII, "+--+\n|ab|\n+--+\n"},
	}

	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			got, err := Render(Document{"ab"}, Options{Style: tt.style})
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_Title(t *testing.T) {
	got, err := Render(Document{"hello"}, Options{Style: StyleSimple, Padding: 2, Title: "T"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	want := "┌── T ────┐\n" +
		"│         │\n" +
		"│  hello  │\n" +
		"└─────────┘\n"
	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRender_TitleWidensBox(t *testing.T) {
	got, err := Render(Document{"ab"}, Options{Style: StyleASCII, Padding: 1, Title: "Long title"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	want := "+-- Long title +\n" +
		"|              |\n" +
		"| ab           |\n" +
		"+--------------+\n"
	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRender_EmptyDocument(t *testing.T) {
	for _, doc := range []Document{nil, {}} {
		got, err := Render(doc, Options{Style: StyleSimple, Padding: 1})
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}

		want := "┌──┐\n│  │\n└──┘\n"
		if got != want {
			t.Errorf("Render(%v) = %q, want %q", doc, got, want)
		}
	}
}

func TestRender_ConstantRowWidth(t *testing.T) {
	docs := []Document{
		{""},
		{"a"},
		{"short", "a much longer line", ""},
		{"ünïcödé", "x"},
	}
	titles := []string{"", "T", "a title that is wider than everything", "tïtlé ✓"}

	for _, style := range Styles() {
		for pad := 0; pad <= 3; pad++ {
			for _, doc := range docs {
				for _, title := range titles {
					opts := Options{Style: style, Padding: pad, Title: title}
					out, err := Render(doc, opts)
					if err != nil {
						t.Fatalf("Render(%v, %+v) failed: %v", doc, opts, err)
					}

					want := ComputeLayout(doc, opts).BoxWidth + 2
					rows := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
					for i, row := range rows {
						if n := utf8.RuneCountInString(row); n != want {
							t.Errorf("style=%s pad=%d title=%q row %d width %d, want %d: %q",
								style, pad, title, i, n, want, row)
						}
					}
				}
			}
		}
	}
}

func TestRender_RowCount(t *testing.T) {
	out, err := Render(Document{"a", "b", "c"}, Options{Padding: 0, Title: "x"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	// top, separator, three lines, bottom
	if n := strings.Count(out, "\n"); n != 6 {
		t.Errorf("expected 6 rows, got %d", n)
	}
}

func TestRender_InvalidPadding(t *testing.T) {
	out, err := Render(Document{"a"}, Options{Style: StyleSimple, Padding: -1})
	if !errors.Is(err, ErrInvalidPadding) {
		t.Fatalf("expected ErrInvalidPadding, got %v", err)
	}
	if out != "" {
		t.Errorf("expected no output on error, got %q", out)
	}
}

func TestRender_InvalidStyle(t *testing.T) {
	out, err := Render(Document{"a"}, Options{Style: Style(42)})
	if !errors.Is(err, ErrUnknownStyle) {
		t.Fatalf("expected ErrUnknownStyle, got %v", err)
	}
	if out != "" {
		t.Errorf("expected no output on error, got %q", out)
	}
}

func TestRender_TitleControlCharacters(t *testing.T) {
	titles := []string{"a\nb", "a\tb", "\r", "x\x1b[31m", "end\u0085"}

	for _, title := range titles {
		t.Run(title, func(t *testing.T) {
			out, err := Render(Document{"a"}, Options{Style: StyleSimple, Padding: 1, Title: title})
			if !errors.Is(err, ErrInvalidTitle) {
				t.Fatalf("expected ErrInvalidTitle, got %v", err)
			}
			if out != "" {
				t.Errorf("expected no output on error, got %q", out)
			}
		})
	}
}

var ansiSeq = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestRender_BorderColorKeepsGeometry(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI256)
	defer lipgloss.SetColorProfile(prev)

	doc := Document{"hello", "world!"}
	plain, err := Render(doc, Options{Style: StyleRounded, Padding: 1, Title: "hi"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	colored, err := Render(doc, Options{Style: StyleRounded, Padding: 1, Title: "hi", BorderColor: "63"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if !strings.Contains(colored, "\x1b[") {
		t.Error("expected escape sequences in colored output")
	}
	if stripped := ansiSeq.ReplaceAllString(colored, ""); stripped != plain {
		t.Errorf("colored output differs from plain after stripping:\n%s\nvs\n%s", stripped, plain)
	}
}

func TestComputeLayout(t *testing.T) {
	tests := []struct {
		name        string
		doc         Document
		opts        Options
		wantBox     int
		wantContent int
	}{
		{"no title", Document{"abc"}, Options{Padding: 2}, 7, 3},
		{"narrow title", Document{"abcdef"}, Options{Padding: 1, Title: "ab"}, 8, 6},
		{"wide title", Document{"a"}, Options{Padding: 1, Title: "abcdef"}, 10, 8},
		{"zero padding", Document{"abcd", "ab"}, Options{Padding: 0}, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ComputeLayout(tt.doc, tt.opts)
			if l.BoxWidth != tt.wantBox {
				t.Errorf("BoxWidth = %d, want %d", l.BoxWidth, tt.wantBox)
			}
			if l.ContentWidth != tt.wantContent {
				t.Errorf("ContentWidth = %d, want %d", l.ContentWidth, tt.wantContent)
			}
		})
	}
}

func TestTitleWidth(t *testing.T) {
	if w := TitleWidth(""); w != 0 {
		t.Errorf("TitleWidth(\"\") = %d, want 0", w)
	}
	if w := TitleWidth("abc"); w != 7 {
		t.Errorf("TitleWidth(abc) = %d, want 7", w)
	}
	if w := TitleWidth("héllo"); w != 9 {
		t.Errorf("TitleWidth(héllo) = %d, want 9", w)
	}
}
