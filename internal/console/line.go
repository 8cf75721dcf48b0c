// Package console reads and writes the line oriented dialogue with the user.
package console

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned by ReadLine for a line that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// ReadLine returns one line from r, including the trailing newline when there
// is one. Nothing after the newline is taken from r. Reaching the end of the
// stream is not an error: the bytes read so far, possibly none, are the line.
// A line that is not valid UTF-8 fails with ErrInvalidUTF8.
func ReadLine(r io.Reader) (string, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = &byteReader{r: r}
	}
	var sb strings.Builder
	for {
		b, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return checkUTF8(sb.String())
			}
			return sb.String(), err
		}
		sb.WriteByte(b)
		if b == '\n' {
			return checkUTF8(sb.String())
		}
	}
}

func checkUTF8(line string) (string, error) {
	if !utf8.ValidString(line) {
		return line, ErrInvalidUTF8
	}
	return line, nil
}

// Prompt writes text followed by a newline.
func Prompt(w io.Writer, text string) error {
	_, err := fmt.Fprintln(w, text)
	return err
}

// byteReader reads a single byte per call so that no input is buffered past
// the end of the line.
type byteReader struct {
	r   io.Reader
	buf [1]byte
}

func (b *byteReader) ReadByte() (byte, error) {
	for {
		n, err := b.r.Read(b.buf[:])
		if n == 1 {
			return b.buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}
