package parser

// Source is a forward-consuming cursor over program text, addressed in runes
type Source struct {
	input []rune
	index int
}

// NewSource creates a cursor positioned at the start of text
func NewSource(text string) *Source {
	return &Source{input: []rune(text)}
}

// Peek returns the rune i positions ahead of the cursor without consuming it.
// ok is false past the end of input.
func (s *Source) Peek(i int) (r rune, ok bool) {
	at := s.index + i
	if at < 0 || at >= len(s.input) {
		return 0, false
	}
	return s.input[at], true
}

// Next consumes and returns the rune under the cursor, or 0 at end of input
func (s *Source) Next() rune {
	if s.index >= len(s.input) {
		return 0
	}
	r := s.input[s.index]
	s.index++
	return r
}

// Skip consumes one rune
func (s *Source) Skip() {
	if s.index < len(s.input) {
		s.index++
	}
}

// Done reports whether all input has been consumed
func (s *Source) Done() bool {
	return s.index >= len(s.input)
}

// Remainder returns the unconsumed text
func (s *Source) Remainder() string {
	return string(s.input[s.index:])
}

// Offset returns the number of runes consumed so far
func (s *Source) Offset() int {
	return s.index
}
