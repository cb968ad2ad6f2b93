package lib

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStreamNext(t *testing.T) {
	stream := newTokenStream()

	stream.Write(token{tokType: tokenTypeInteger, value: []rune("42")})

	tok, done, err := stream.Next()
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, tokenTypeInteger, tok.tokType)
	require.Equal(t, "42", string(tok.value))
}

func TestStreamNextDone(t *testing.T) {
	stream := newTokenStream()

	stream.Write(token{tokType: tokenTypeInteger, value: []rune("42")})
	stream.Done()

	tok, done, err := stream.Next()
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, tokenTypeInteger, tok.tokType)
	require.Equal(t, "42", string(tok.value))

	_, done, err = stream.Next()
	require.NoError(t, err)
	require.True(t, done)
}

// done is sticky: reading past the end keeps reporting done.
func TestStreamNextDoneMulti(t *testing.T) {
	stream := newTokenStream()

	stream.Write(token{tokType: tokenTypePlus, value: []rune("+")})
	stream.Done()

	tok, done, err := stream.Next()
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, tokenTypePlus, tok.tokType)

	for i := 0; i < 3; i++ {
		_, done, err = stream.Next()
		require.NoError(t, err)
		require.True(t, done)
	}
}

func TestStreamNextTimeout(t *testing.T) {
	oldTimeout := TokenReadTimeout
	TokenReadTimeout = 1 * time.Microsecond
	defer func() {
		TokenReadTimeout = oldTimeout
	}()

	stream := newTokenStream()
	_, done, err := stream.Next()
	require.Error(t, err)
	require.False(t, done)
}

func TestStreamPeek(t *testing.T) {
	stream := newTokenStream()

	stream.Write(token{tokType: tokenTypeInteger, value: []rune("7")})
	stream.Done()

	tok, done, err := stream.Peek()
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, "7", string(tok.value))

	tok, done, err = stream.Next()
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, "7", string(tok.value))

	_, done, err = stream.Next()
	require.NoError(t, err)
	require.True(t, done)
}
