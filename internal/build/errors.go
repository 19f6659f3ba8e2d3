package build

import (
	"errors"
	"fmt"

	"github.com/vektah/gqlparser/v2/gqlerror"

	language "github.com/hanpama/sdlmodel/internal/language"
)

// ParseError is the single failure type reported by the pass. It always
// names the source document; Line and Column are zero only when the
// failure happened before any parsing. The originating failure is kept as
// the cause and reachable through errors.As / errors.Is.
type ParseError struct {
	File    string
	Line    int
	Column  int
	Message string
	err     error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", e.File, e.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, e.Message)
}

func (e *ParseError) Unwrap() error { return e.err }

// ConstructError reports a syntax node whose shape the builders do not
// accept for its position: an illegal default value literal or an illegal
// type reference. Reaching one indicates a grammar/builder mismatch.
type ConstructError struct {
	Message string
	Line    int
	Column  int
}

func (e *ConstructError) Error() string {
	if e.Line == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (line %d, column %d)", e.Message, e.Line, e.Column)
}

func constructErrorf(pos *language.Position, format string, args ...any) error {
	e := &ConstructError{Message: fmt.Sprintf(format, args...)}
	if pos != nil {
		e.Line = pos.Line
		e.Column = pos.Column
	}
	return e
}

func errIllegalLiteral(node *language.Value) error {
	return constructErrorf(node.Position, "illegal default value literal %s", node.String())
}

func errIllegalTypeRef(node *language.Type) error {
	return constructErrorf(node.Position, "illegal type reference")
}

// translate normalizes recognizer and construction failures into a single
// *ParseError carrying the document identity plus the failure location.
func translate(file string, err error) error {
	if err == nil {
		return nil
	}

	var gqlErr *gqlerror.Error
	if errors.As(err, &gqlErr) {
		pe := &ParseError{File: file, Message: gqlErr.Message, err: err}
		if len(gqlErr.Locations) > 0 {
			pe.Line = gqlErr.Locations[0].Line
			pe.Column = gqlErr.Locations[0].Column
		}
		return pe
	}

	var ce *ConstructError
	if errors.As(err, &ce) {
		return &ParseError{File: file, Line: ce.Line, Column: ce.Column, Message: ce.Message, err: err}
	}

	return &ParseError{File: file, Message: err.Error(), err: err}
}
