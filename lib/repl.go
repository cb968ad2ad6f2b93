package lib

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Repl runs the prompt/read/evaluate/print loop until the input is
// exhausted. Every outcome of a line is written to out: the value for a
// computed line, the error message for a failed one, nothing extra for a
// blank one. Failed lines never stop the loop; only a real read error does.
func Repl(in io.Reader, out io.Writer, prompt string, logger zerolog.Logger) error {
	reader := bufio.NewReader(in)

	for {
		fmt.Fprint(out, prompt)

		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return readErr
		}
		atEOF := readErr == io.EOF
		if atEOF && line == "" {
			return nil
		}

		value, hasValue, err := Eval(line)
		switch {
		case err != nil:
			logger.Debug().Err(err).Str("line", line).Msg("line failed")
			fmt.Fprintln(out, err)
		case hasValue:
			fmt.Fprintln(out, value)
		}

		if atEOF {
			return nil
		}
	}
}
