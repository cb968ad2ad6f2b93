package lib

import (
	"errors"
	"time"
)

const STREAM_BUF_SIZE = 64

var TokenReadTimeout = 1 * time.Second

type peekResult struct {
	tok  token
	done bool
	err  error
}

// tokenStream buffers tokens between the lexer goroutine and the evaluator.
// The lexer calls Write for each token and Done when the line is finished;
// the evaluator pulls with Next/Peek. A read that outlives TokenReadTimeout
// without a token or a Done signal means the producer stalled.
type tokenStream struct {
	tokChan      chan token
	doneChan     chan struct{}
	peeked       *peekResult
	doneReceived bool
}

func newTokenStream() *tokenStream {
	return &tokenStream{
		tokChan:      make(chan token, STREAM_BUF_SIZE),
		doneChan:     make(chan struct{}, 1),
		peeked:       nil,
		doneReceived: false,
	}
}

func (ts *tokenStream) Next() (tok token, done bool, err error) {
	if ts.peeked != nil {
		res := ts.peeked
		ts.peeked = nil
		return res.tok, res.done, res.err
	}

	timeout := TokenReadTimeout
	if ts.doneReceived {
		timeout = 0
	}

	select {
	case tok := <-ts.tokChan:
		return tok, false, nil
	case <-ts.doneChan:
		ts.doneReceived = true
		return ts.Next()
	case <-time.After(timeout):
		if ts.doneReceived {
			return token{}, true, nil
		}
		return token{}, false, errors.New("timed out waiting for next token")
	}
}

func (ts *tokenStream) Peek() (token, bool, error) {
	if ts.peeked != nil {
		return ts.peeked.tok, ts.peeked.done, ts.peeked.err
	}
	tok, done, err := ts.Next()
	ts.peeked = &peekResult{tok: tok, done: done, err: err}
	return tok, done, err
}

func (ts *tokenStream) Write(tok token) {
	ts.tokChan <- tok
}

func (ts *tokenStream) Done() {
	ts.doneChan <- struct{}{}
}
