package loader

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/gostonefire/studentregister/internal/conf"
	"github.com/gostonefire/studentregister/internal/utils"
	"github.com/gostonefire/studentregister/regerr"
	"io"
	"strconv"
	"strings"
)

// InsertFunc - Receives every successfully parsed student
type InsertFunc func(id int64, name string) error

// ParseLine - Parses a line of the form <id>,<name>. The id is a decimal integer, optionally preceded by blanks
// and a sign, directly followed by a comma. The name is everything after the first comma up to the end of
// the line and must not be empty.
//
// It returns:
//   - id and name if ok is true
//   - ok is false for a malformed line
func ParseLine(line string) (id int64, name string, ok bool) {
	line = utils.TrimLineEnd(line)

	comma := strings.IndexByte(line, ',')
	if comma < 0 {
		return
	}

	id, err := strconv.ParseInt(strings.TrimLeft(line[:comma], " \t"), 10, 64)
	if err != nil {
		return
	}

	name = line[comma+1:]
	if name == "" {
		return
	}

	ok = true

	return
}

// Load - Reads lines from r until end of input and calls insert for every well-formed line. Malformed lines are
// skipped and reported as regerr.MalformedLine warnings, they never stop the load.
//   - r is the source to read
//   - insert is called with every parsed id and name
//
// It returns:
//   - count is the number of inserted students
//   - warnings holds one regerr.MalformedLine per skipped line
//   - err is a standard error if reading failed or insert failed
func Load(r io.Reader, insert InsertFunc) (count int, warnings []error, err error) {
	br := bufio.NewReaderSize(r, conf.MaxLineLen)

	var line string
	var lineNo int
	for {
		line, err = br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			err = fmt.Errorf("error while reading line %d: %s", lineNo+1, err)
			return
		}
		atEOF := err != nil
		err = nil

		if atEOF && line == "" {
			break
		}
		lineNo++

		id, name, ok := ParseLine(line)
		if !ok {
			warnings = append(warnings, regerr.MalformedLine{LineNo: lineNo, Line: utils.TrimLineEnd(line)})
		} else {
			err = insert(id, name)
			if err != nil {
				err = fmt.Errorf("error while inserting student from line %d: %s", lineNo, err)
				return
			}
			count++
		}

		if atEOF {
			break
		}
	}

	return
}
