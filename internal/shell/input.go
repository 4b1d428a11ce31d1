package shell

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// input - Reads whitespace separated words and whole lines from the same stream, the way a terminal user
// types answers either one per line or several on one line
type input struct {
	reader  *bufio.Reader
	pending string
	eof     bool
}

func newInput(r io.Reader) *input {
	return &input{reader: bufio.NewReader(r)}
}

// fill - Makes sure there is unread text in pending, reading lines until a non blank one shows up
func (I *input) fill() (ok bool) {
	for strings.TrimSpace(I.pending) == "" {
		if I.eof {
			return false
		}
		line, err := I.reader.ReadString('\n')
		if err != nil {
			I.eof = true
		}
		I.pending = line
	}

	return true
}

// word - Returns the next whitespace separated word, ok is false at end of input
func (I *input) word() (w string, ok bool) {
	if !I.fill() {
		return
	}

	text := strings.TrimLeft(I.pending, " \t\r\n")
	end := strings.IndexAny(text, " \t\r\n")
	if end < 0 {
		end = len(text)
	}
	w, I.pending = text[:end], text[end:]

	return w, true
}

// line - Returns the rest of the current line, or the next non blank line if nothing is left on it
func (I *input) line() (l string, ok bool) {
	if !I.fill() {
		return
	}

	l = strings.TrimSpace(I.pending)
	I.pending = ""

	return l, true
}

// number - Reads the next word as an integer, valid is false if the word is not a number
func (I *input) number() (n int64, valid, ok bool) {
	w, ok := I.word()
	if !ok {
		return
	}

	n, err := strconv.ParseInt(w, 10, 64)
	valid = err == nil

	return
}
