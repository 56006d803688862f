// Package layout composes fixed-width text blocks into column-aligned
// terminal paragraphs.
//
// A Block is a rectangle of text: an optional one-line head, a wrapped body
// and padding on all four sides. A Chain places blocks side by side and
// Build reconciles their heights into a Paragraph, which is what gets
// printed. Color escapes never count toward a line's width.
package layout

import "strings"

const (
	tabWidth = 4
	ellipsis = "…"
)

// Padding is the blank space around a block's content, in lines (Top,
// Bottom) and cells (Left, Right).
type Padding struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// Head is the single-line label printed before the body's first line.
type Head struct {
	Label     string
	Color     Color
	Highlight bool
}

// Body is the wrapped content of a block. Offset is the column at which body
// lines start, relative to the head.
type Body struct {
	Content string
	Color   Color
	Offset  int
}

// Block is a rectangular unit of text with a fixed content width.
type Block struct {
	width    int
	padding  Padding
	head     Head
	body     Body
	keywords []Keyword
}

// NewBlock validates the geometry and returns a block.
func NewBlock(width int, padding Padding, head Head, body Body) (*Block, error) {
	if width <= 0 {
		return nil, configErrorf("width", "must be positive, got %d", width)
	}
	for _, side := range []struct {
		name string
		v    int
	}{
		{"padding top", padding.Top},
		{"padding right", padding.Right},
		{"padding bottom", padding.Bottom},
		{"padding left", padding.Left},
	} {
		if side.v < 0 {
			return nil, configErrorf(side.name, "must not be negative, got %d", side.v)
		}
	}
	if body.Offset < 0 || body.Offset >= width {
		return nil, configErrorf("body offset", "must be in [0, %d), got %d", width, body.Offset)
	}
	for _, c := range []Color{head.Color, body.Color} {
		if _, err := ParseColor(string(c)); err != nil {
			return nil, err
		}
	}
	return &Block{width: width, padding: padding, head: head, body: body}, nil
}

// NewSpacer returns a block of blank cells, used as a left margin. A zero
// width spacer is valid and contributes nothing to a line.
func NewSpacer(width int) (*Block, error) {
	if width < 0 {
		return nil, configErrorf("spacer width", "must not be negative, got %d", width)
	}
	return &Block{width: width}, nil
}

// AddKeyword highlights every match of pattern in the body with c. When
// keywords overlap, the one added first wins.
func (b *Block) AddKeyword(pattern string, c Color) error {
	if _, err := ParseColor(string(c)); err != nil {
		return err
	}
	kw, err := NewKeyword(pattern, c)
	if err != nil {
		return err
	}
	b.keywords = append(b.keywords, kw)
	return nil
}

// Width returns the content width.
func (b *Block) Width() int {
	return b.width
}

// OuterWidth returns the width of every emitted line, padding included.
func (b *Block) OuterWidth() int {
	return b.padding.Left + b.width + b.padding.Right
}

// Lines lays out the block. Every returned line is OuterWidth cells wide
// once color escapes are ignored.
func (b *Block) Lines(s *Styler) []string {
	blank := strings.Repeat(" ", b.OuterWidth())
	left := strings.Repeat(" ", b.padding.Left)
	right := strings.Repeat(" ", b.padding.Right)

	var out []string
	for i := 0; i < b.padding.Top; i++ {
		out = append(out, blank)
	}
	for _, row := range b.content(s) {
		out = append(out, left+row+right)
	}
	for i := 0; i < b.padding.Bottom; i++ {
		out = append(out, blank)
	}
	return out
}

// content returns the rows between the paddings, each exactly width cells.
func (b *Block) content(s *Styler) []string {
	label := strings.ReplaceAll(normalize(b.head.Label), "\n", " ")
	headW := cells.StringWidth(label)
	if headW > b.width {
		label = cells.Truncate(label, b.width, ellipsis)
		headW = cells.StringWidth(label)
	}
	head := s.Paint(label, b.head.Color, b.head.Highlight)

	body := Highlight(normalize(b.body.Content), b.body.Color, b.keywords)
	if body.Len() == 0 {
		return []string{head + strings.Repeat(" ", b.width-headW)}
	}

	indent := strings.Repeat(" ", b.body.Offset)
	bodyW := b.width - b.body.Offset
	col := b.body.Offset
	if headW > col {
		col = headW + 1
	}

	var rows []string
	var lines []StyledText
	if col >= b.width {
		// No room next to the head; the body starts on the next row.
		rows = append(rows, head+strings.Repeat(" ", b.width-headW))
		lines = wrap(body, bodyW, bodyW)
	} else {
		lines = wrap(body, b.width-col, bodyW)
		first := lines[0].fit(b.width - col)
		rows = append(rows, head+strings.Repeat(" ", col-headW)+first.Render(s)+strings.Repeat(" ", b.width-col-first.Width()))
		lines = lines[1:]
	}
	for _, l := range lines {
		l = l.fit(bodyW)
		rows = append(rows, indent+l.Render(s)+strings.Repeat(" ", bodyW-l.Width()))
	}
	return rows
}

// normalize expands tabs and drops carriage returns.
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}
