package layout

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"sync"
)

// Chain is an ordered, left-to-right sequence of blocks printed as one
// paragraph.
type Chain struct {
	blocks []*Block
}

// NewChain returns a chain of the given blocks.
func NewChain(blocks ...*Block) *Chain {
	return &Chain{blocks: blocks}
}

// Append adds b to the right end of the chain.
func (c *Chain) Append(b *Block) *Chain {
	c.blocks = append(c.blocks, b)
	return c
}

// Len returns the number of blocks in the chain.
func (c *Chain) Len() int {
	return len(c.blocks)
}

// Build lays out every block and pads the shorter ones with blank lines so
// all blocks have the same height. The blocks are left untouched.
func (c *Chain) Build(s *Styler) (*Paragraph, error) {
	columns := make([][]string, len(c.blocks))
	height := 0
	width := 0
	for i, b := range c.blocks {
		if b == nil {
			return nil, errors.New("layout: nil block in chain")
		}
		columns[i] = b.Lines(s)
		height = max(height, len(columns[i]))
		width += b.OuterWidth()
	}

	rows := make([]string, height)
	for r := range rows {
		var sb strings.Builder
		for i, col := range columns {
			if r < len(col) {
				sb.WriteString(col[r])
				continue
			}
			sb.WriteString(strings.Repeat(" ", c.blocks[i].OuterWidth()))
		}
		rows[r] = sb.String()
	}
	return &Paragraph{rows: rows, width: width}, nil
}

// Paragraph is the immutable result of building a chain.
type Paragraph struct {
	rows  []string
	width int
}

// Lines returns a copy of the paragraph's rows.
func (p *Paragraph) Lines() []string {
	return append([]string(nil), p.rows...)
}

// Width returns the visible width of every row.
func (p *Paragraph) Width() int {
	return p.width
}

// WriteTo writes the rows, each followed by a newline, in a single write.
func (p *Paragraph) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	for _, row := range p.rows {
		buf.WriteString(row)
		buf.WriteByte('\n')
	}
	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// Printer serializes paragraph and line writes to a shared writer.
type Printer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print writes every paragraph in order while holding the writer.
func (p *Printer) Print(paras ...*Paragraph) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, para := range paras {
		if _, err := para.WriteTo(p.w); err != nil {
			return err
		}
	}
	return nil
}

// Println writes a single line.
func (p *Printer) Println(line string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, err := io.WriteString(p.w, line+"\n")
	return err
}
