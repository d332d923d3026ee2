package parse

import (
	"github.com/ef-ds/deque"
)

// State represents the parser's position in the argument list
type State interface {
	Pos() int             // Get the index of the current argument, -1 before the first Advance
	CurrentArg() string   // Get the current argument
	Advance() bool        // Advance to the next argument, false once exhausted
	Peek() (string, bool) // Look at the next argument without consuming it
	Drain() []string      // Consume and return every remaining argument
	Len() int             // Gets the length of the argument list
}

// DefaultState is the default implementation of the State interface.
// Arguments are consumed front to back, which keeps position bookkeeping
// correct when an option swallows the following argument as its value.
type DefaultState struct {
	pending *deque.Deque
	current string
	pos     int
	total   int
}

// NewState creates a new State instance with the given argument list
func NewState(args []string) State {
	pending := deque.New()
	for _, arg := range args {
		pending.PushBack(arg)
	}

	return &DefaultState{
		pending: pending,
		pos:     -1,
		total:   len(args),
	}
}

// Pos returns the index of the current argument
func (s *DefaultState) Pos() int {
	return s.pos
}

// CurrentArg returns the current argument
func (s *DefaultState) CurrentArg() string {
	return s.current
}

// Advance consumes the next argument, returning true if one was available
func (s *DefaultState) Advance() bool {
	value, ok := s.pending.PopFront()
	if !ok {
		return false
	}
	s.current = value.(string)
	s.pos++

	return true
}

// Peek returns the next argument without advancing the current position
func (s *DefaultState) Peek() (string, bool) {
	value, ok := s.pending.Front()
	if !ok {
		return "", false
	}

	return value.(string), true
}

// Drain consumes every remaining argument and returns them in order
func (s *DefaultState) Drain() []string {
	var rest []string
	for {
		value, ok := s.pending.PopFront()
		if !ok {
			break
		}
		rest = append(rest, value.(string))
	}
	if n := len(rest); n > 0 {
		s.current = rest[n-1]
		s.pos += n
	}

	return rest
}

// Len returns the length of the argument list
func (s *DefaultState) Len() int {
	return s.total
}
