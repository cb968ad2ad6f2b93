package lib

import "errors"

// One sentinel per failure mode so callers can tell them apart with
// errors.Is. Call sites wrap these with the offending token or column.
var (
	// scanning
	ErrInvalidCharacter = errors.New("invalid character")

	// grammar
	ErrUnexpectedOperator   = errors.New("expression must start with an integer")
	ErrExpectedOperator     = errors.New("expecting an operator")
	ErrExpectedOperand      = errors.New("expecting an integer operand")
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")

	// arithmetic
	ErrDivisionByZero  = errors.New("division by zero")
	ErrIntegerOverflow = errors.New("integer out of range")
	ErrBadOperand      = errors.New("operand is not a valid integer")
)
