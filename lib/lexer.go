package lib

import (
	"fmt"
)

type charInfo struct {
	ch  rune
	col int
}

func lex(expr string, emit func(token)) error {
	l := newLexer(expr, emit)
	return l.scan()
}

type lexer struct {
	expr             []rune
	length           int
	currentCharIndex int
	currentCol       int
	runStartIndex    int
	runCol           int
	emitCallback     func(token)
}

func newLexer(expr string, emit func(token)) *lexer {
	chars := []rune(expr)
	return &lexer{
		expr:             chars,
		length:           len(chars),
		currentCharIndex: 0,
		currentCol:       1,
		runStartIndex:    0,
		runCol:           1,
		emitCallback:     emit,
	}
}

func (l *lexer) emit(tok token) {
	l.endRun()
	l.emitCallback(tok)
	l.resetRun()
}

func (l *lexer) peek(offset int) (charInfo, bool) {
	i := l.currentCharIndex + offset
	if i >= l.length {
		return charInfo{}, false
	}
	return charInfo{ch: l.expr[i], col: l.currentCol}, true
}

func (l *lexer) advance() (charInfo, bool) {
	info, ok := l.peek(0)
	l.currentCharIndex++
	l.currentCol++
	return info, ok
}

func (l *lexer) scan() error {
	for {
		more, err := l.next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	return nil
}

func (l *lexer) next() (bool, error) {
	chInfo, ok := l.advance()
	if !ok {
		l.endRun()
		return false, nil
	}

	class, known := classifyChar(chInfo.ch)
	if !known {
		return false, fmt.Errorf("%w %q at col %d", ErrInvalidCharacter, chInfo.ch, chInfo.col)
	}

	switch class {
	case classWhitespace:
		l.endRun()
	case classPlus:
		l.emit(token{tokType: tokenTypePlus, value: []rune{chInfo.ch}, col: chInfo.col})
	case classMinus:
		l.emit(token{tokType: tokenTypeMinus, value: []rune{chInfo.ch}, col: chInfo.col})
	case classMul:
		l.emit(token{tokType: tokenTypeMul, value: []rune{chInfo.ch}, col: chInfo.col})
	case classDiv:
		l.emit(token{tokType: tokenTypeDiv, value: []rune{chInfo.ch}, col: chInfo.col})
	case classLineEnd:
		// terminator ends the line's grammar; anything after it is ignored
		l.emit(token{tokType: tokenTypeEndOfInput, value: []rune{chInfo.ch}, col: chInfo.col})
		return false, nil
	case classDigit:
		// keep going with this digit run
	}

	return true, nil
}

// endRun emits the digit run accumulated since the last reset, if any. Digits
// are the only class that accumulates, so an unfinished run is always an
// integer token.
func (l *lexer) endRun() {
	if l.currentCharIndex > l.runStartIndex+1 {
		substr := l.expr[l.runStartIndex : l.currentCharIndex-1]
		l.emitCallback(token{tokType: tokenTypeInteger, value: substr, col: l.runCol})
	}
	l.resetRun()
}

func (l *lexer) resetRun() {
	l.runCol = l.currentCol
	l.runStartIndex = l.currentCharIndex
}
