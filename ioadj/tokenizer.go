package ioadj

import (
	"bufio"
	"io"
	"strconv"
)

// tokenizer is a minimal whitespace/colon-aware scanner shared by the
// adjacency-list and adjacency-matrix readers, grounded on the original
// engine's fscanf(" %d ", ...) / fgetc() pattern but built on bufio.Reader
// instead of C's stream-formatted reads.
type tokenizer struct {
	r   *bufio.Reader
	err error
}

func newTokenizer(r io.Reader) *tokenizer {
	return &tokenizer{r: bufio.NewReader(r)}
}

func (t *tokenizer) skipSpace() {
	for {
		b, err := t.r.ReadByte()
		if err != nil {
			t.err = err
			return
		}
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			continue
		}
		t.r.UnreadByte()
		return
	}
}

// nextInt reads an optionally signed decimal integer, skipping leading
// whitespace. ok is false on EOF or a malformed token.
func (t *tokenizer) nextInt() (int, bool) {
	t.skipSpace()
	if t.err != nil {
		return 0, false
	}

	buf := make([]byte, 0, 8)
	b, err := t.r.ReadByte()
	if err != nil {
		t.err = err
		return 0, false
	}
	if b == '-' || b == '+' {
		buf = append(buf, b)
		b, err = t.r.ReadByte()
		if err != nil {
			t.err = err
			return 0, false
		}
	}
	for b >= '0' && b <= '9' {
		buf = append(buf, b)
		b, err = t.r.ReadByte()
		if err != nil {
			break
		}
	}
	if err == nil {
		t.r.UnreadByte()
	}
	if len(buf) == 0 || (len(buf) == 1 && (buf[0] == '-' || buf[0] == '+')) {
		return 0, false
	}

	v, convErr := strconv.Atoi(string(buf))
	if convErr != nil {
		return 0, false
	}
	return v, true
}

// expectByte skips whitespace then consumes exactly want, reporting false
// if the next non-space byte differs.
func (t *tokenizer) expectByte(want byte) bool {
	t.skipSpace()
	if t.err != nil {
		return false
	}
	b, err := t.r.ReadByte()
	if err != nil {
		t.err = err
		return false
	}
	return b == want
}

// nextDigit reads a single '0' or '1' digit character, skipping whitespace
// (spec.md: "Whitespace between characters is tolerated" for the matrix
// format).
func (t *tokenizer) nextDigit() (byte, bool) {
	t.skipSpace()
	if t.err != nil {
		return 0, false
	}
	b, err := t.r.ReadByte()
	if err != nil {
		t.err = err
		return 0, false
	}
	if b != '0' && b != '1' {
		return 0, false
	}
	return b, true
}

// readLine reads up to and including the next newline, or to EOF.
func (t *tokenizer) readLine() (string, bool) {
	line, err := t.r.ReadString('\n')
	if err != nil && line == "" {
		t.err = err
		return "", false
	}
	return line, true
}
