package arith

import "strconv"

// OperatorError is an error indicating an operator token in a position where
// it cannot appear, e.g. a leading + (there is no unary plus). It implements
// InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
	// Unary is whether the parser expected a unary operator at the time.
	Unary bool
}

func (err *OperatorError) Error() string {
	s := "binary"
	if err.Unary {
		s = "unary"
	}
	return errpos(err.Col, "unknown "+s+" operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating an unmatched parenthesis in the input.
// It implements InputError.
type BracketError struct {
	// Col is the position at which the mismatch was detected.
	Col int
	// Left is the opening parenthesis, or the empty string if a closing
	// parenthesis appeared with no matching open.
	Left string
	// Right is the closing parenthesis, or the empty string if the input
	// ended before an opening parenthesis was matched.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EOFError is an error indicating that the input ended in the middle of an
// expression, e.g. following a binary operator. It implements InputError.
type EOFError struct {
	// Col is the position of the end of the input.
	Col int
}

func (err *EOFError) Error() string {
	return errpos(err.Col, "unexpected end of expression")
}

func (err *EOFError) Pos() int {
	return err.Col
}

// TrailingError is an error indicating leftover tokens after a complete
// expression, e.g. the second number in "1 2". It implements InputError.
type TrailingError struct {
	// Col is the position of the first leftover token.
	Col int
	// Token is the text of the first leftover token.
	Token string
}

func (err *TrailingError) Error() string {
	return errpos(err.Col, "trailing token "+strconv.Quote(err.Token)+" after expression")
}

func (err *TrailingError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty expression or
// subexpression.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EOFError)(nil)
	_ InputError = (*TrailingError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*LexError)(nil)
)
