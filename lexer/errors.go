package lexer

import "fmt"

// Error is returned by [Lexer.Next] when it encounters a character it cannot
// classify into any Kind. Lexing stops at the first Error; there is no
// recovery, matching the parser's own fail-fast discipline.
type Error struct {
	Msg   string
	Start Span
	End   Span
}

func (e *Error) Error() string {
	return formatError(e.Start, e.Msg)
}

func errorf(start, end Span, format string, args ...interface{}) *Error {
	return &Error{Msg: fmt.Sprintf(format, args...), Start: start, End: end}
}

// formatError renders a position-qualified message in the form "line:col:
// message", the same shape participle's own lexer errors use.
func formatError(pos Span, message string) string {
	return fmt.Sprintf("%d:%d: %s", pos.Line, pos.Column, message)
}
