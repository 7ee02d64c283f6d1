package detect

import "github.com/textsift/urlsift/charutil"

// cursor is a rewindable rune iterator over the input text. Backtracking is
// done with goBack and seek; seek only ever targets positions already
// visited in the current scan, which keeps reprocessing bounded.
type cursor struct {
	content []rune
	index   int

	// Runes re-read due to goBack or seek, kept for instrumentation.
	backtracked int
}

func newCursor(content string) *cursor {
	return &cursor{content: []rune(content)}
}

// read consumes and returns the next rune. Whitespace other than ' ' is
// folded to ' ' so the scanner has a single candidate terminator to look
// for. Callers must check eof first.
func (c *cursor) read() rune {
	r := c.content[c.index]
	c.index++
	if charutil.IsWhiteSpace(r) {
		return ' '
	}
	return r
}

// peek returns the next n runes without consuming them.
func (c *cursor) peek(n int) string {
	return string(c.content[c.index : c.index+n])
}

// peekAt returns the rune i positions ahead without consuming it.
func (c *cursor) peekAt(i int) rune {
	return c.content[c.index+i]
}

func (c *cursor) canReadChars(n int) bool {
	return len(c.content) >= c.index+n
}

func (c *cursor) eof() bool {
	return c.index >= len(c.content)
}

func (c *cursor) position() int {
	return c.index
}

// goBack rewinds exactly one rune.
func (c *cursor) goBack() {
	c.backtracked++
	c.index--
}

// seek rewinds to an earlier position.
func (c *cursor) seek(position int) {
	if position < c.index {
		c.backtracked += c.index - position
	}
	c.index = position
}
