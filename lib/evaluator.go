package lib

import (
	"errors"
	"fmt"
	"strconv"
)

// Eval evaluates one line of input. The returned bool reports whether there
// is a value at all: a blank line (empty, or nothing before the terminator)
// yields (0, false, nil). Operators apply strictly left to right with no
// precedence, so "4/2*5+5-3" is (((4/2)*5)+5)-3.
func Eval(expr string) (int64, bool, error) {
	stream := newTokenStream()
	e := evaluator{reader: stream}
	var lexErr error = nil

	go (func() {
		lexErr = lex(expr, stream.Write)
		stream.Done()
	})()

	value, hasValue, err := e.run()

	// Drain until the done signal so the lexer goroutine has finished before
	// lexErr is read, even when the evaluator bailed out early.
	for {
		_, done, drainErr := stream.Next()
		if done || drainErr != nil {
			break
		}
	}

	// A scanning failure is the root cause of whatever the evaluator saw on
	// its truncated stream, so it wins.
	if lexErr != nil {
		err = lexErr
	}
	if err != nil {
		return 0, false, err
	}
	return value, hasValue, nil
}

type evaluator struct {
	reader tokenReader
}

// run folds the token stream into a single value, checking that operand and
// operator tokens alternate. The stream may end either with an end-of-input
// token or by plain exhaustion (a line with no terminator); both are the
// normal stop, but only after a complete operand.
func (e *evaluator) run() (int64, bool, error) {
	first, done, err := e.reader.Next()
	if err != nil {
		return 0, false, err
	}
	if done || first.isEndOfInput() {
		return 0, false, nil
	}
	if first.isOperator() {
		return 0, false, fmt.Errorf("%w but got <%s>", ErrUnexpectedOperator, tokenString(first))
	}

	acc, err := parseOperand(first)
	if err != nil {
		return 0, false, err
	}

	for {
		op, done, err := e.reader.Next()
		if err != nil {
			return 0, false, err
		}
		if done || op.isEndOfInput() {
			break
		}
		if !op.isOperator() {
			return 0, false, fmt.Errorf("%w but got <%s>", ErrExpectedOperator, tokenString(op))
		}

		next, done, err := e.reader.Next()
		if err != nil {
			return 0, false, err
		}
		if done || next.isEndOfInput() {
			return 0, false, fmt.Errorf("%w after <%s>", ErrUnexpectedEndOfInput, tokenString(op))
		}

		operand, err := parseOperand(next)
		if err != nil {
			return 0, false, err
		}

		acc, err = apply(op, acc, operand)
		if err != nil {
			return 0, false, err
		}
	}

	return acc, true, nil
}

func parseOperand(tok token) (int64, error) {
	if tok.tokType != tokenTypeInteger {
		return 0, fmt.Errorf("%w but got <%s>", ErrExpectedOperand, tokenString(tok))
	}

	value, err := strconv.ParseInt(string(tok.value), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %s", ErrIntegerOverflow, string(tok.value))
		}
		// an integer token is all digits, so this only fires on a lexer bug
		return 0, fmt.Errorf("%w: %q", ErrBadOperand, string(tok.value))
	}
	return value, nil
}

// apply computes "left op right". Division truncates toward zero, same as
// Go's native integer division.
func apply(op token, left int64, right int64) (int64, error) {
	switch op.tokType {
	case tokenTypePlus:
		return left + right, nil
	case tokenTypeMinus:
		return left - right, nil
	case tokenTypeMul:
		return left * right, nil
	case tokenTypeDiv:
		if right == 0 {
			return 0, fmt.Errorf("%w at col %d", ErrDivisionByZero, op.col)
		}
		return left / right, nil
	}
	return 0, fmt.Errorf("not an operator token: <%s>", tokenString(op))
}
