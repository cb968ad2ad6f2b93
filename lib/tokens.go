package lib

import "fmt"

// charClass is the classification of a single input character. Tokens are
// maximal runs of identically classified characters, except that whitespace
// never becomes a token and each operator is always a one character run.
type charClass int

const (
	classDigit charClass = iota
	classWhitespace
	classMinus
	classPlus
	classMul
	classDiv
	classLineEnd
)

// classifyChar maps a character onto its class. The accepted alphabet is
// ASCII digits, space, the four operators and the newline terminator; any
// other character returns ok=false rather than panicking so the caller can
// fail just the current line.
func classifyChar(ch rune) (charClass, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return classDigit, true
	case ch == ' ':
		return classWhitespace, true
	case ch == '-':
		return classMinus, true
	case ch == '+':
		return classPlus, true
	case ch == '*':
		return classMul, true
	case ch == '/':
		return classDiv, true
	case ch == '\n':
		return classLineEnd, true
	}
	return 0, false
}

type tokenType int

const (
	tokenTypeInteger tokenType = iota
	tokenTypePlus
	tokenTypeMinus
	tokenTypeMul
	tokenTypeDiv
	tokenTypeEndOfInput
)

type token struct {
	tokType tokenType
	value   []rune
	col     int
}

func (t token) isOperator() bool {
	switch t.tokType {
	case tokenTypePlus, tokenTypeMinus, tokenTypeMul, tokenTypeDiv:
		return true
	}
	return false
}

func (t token) isEndOfInput() bool {
	return t.tokType == tokenTypeEndOfInput
}

func tokenString(tok token) string {
	return fmt.Sprintf("%d -> %s", tok.col, tokenValueString(tok))
}

func tokenValueString(tok token) string {
	switch tok.tokType {
	case tokenTypeInteger:
		return fmt.Sprintf("integer: %s", string(tok.value))
	case tokenTypePlus:
		return "+"
	case tokenTypeMinus:
		return "-"
	case tokenTypeMul:
		return "*"
	case tokenTypeDiv:
		return "/"
	case tokenTypeEndOfInput:
		return "end of input"
	default:
		return "?"
	}
}
