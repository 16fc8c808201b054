// Package calibrate recovers trebuchet calibration values from an amended
// calibration document.
//
// Each line's value is the two-digit number formed by the first and last
// digit on that line; the document's value is the sum over all lines.
package calibrate

import (
	"fmt"

	"tailscale.com/types/logger"
)

// Mode selects what counts as a digit.
type Mode int

const (
	// DigitsOnly counts the numerals 0 through 9.
	DigitsOnly Mode = iota
	// DigitsAndWords also counts the spelled-out words "zero" through
	// "nine", including ones that share letters ("twone" is 2 then 1).
	DigitsAndWords
)

func (m Mode) String() string {
	switch m {
	case DigitsOnly:
		return "digits"
	case DigitsAndWords:
		return "digits+words"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

var digitWords = [...]string{
	"zero",
	"one",
	"two",
	"three",
	"four",
	"five",
	"six",
	"seven",
	"eight",
	"nine",
}

// maxWordLen is the length of the longest entry in digitWords.
const maxWordLen = 5

// wordBuffer holds the most recent letters of the current line.
type wordBuffer struct {
	b [maxWordLen]byte
	n int
}

func (w *wordBuffer) reset() { w.n = 0 }

func (w *wordBuffer) push(c byte) {
	if w.n == len(w.b) {
		copy(w.b[:], w.b[1:])
		w.n--
	}
	w.b[w.n] = c
	w.n++
}

// match reports the digit spelled by the tail of the buffer. No digit word
// is a suffix of another, so at most one can match.
func (w *wordBuffer) match() (uint8, bool) {
	tail := w.b[:w.n]
	for d, word := range digitWords {
		if len(tail) >= len(word) && string(tail[len(tail)-len(word):]) == word {
			return uint8(d), true
		}
	}
	return 0, false
}

// line is the per-line accumulator.
type line struct {
	n           int // digits seen
	first, last uint8
	size        int // bytes seen, excluding the line break
}

func (l *line) add(d uint8) {
	if l.n == 0 {
		l.first = d
	}
	l.last = d
	l.n++
}

// value returns the calibration value of the line, or 0 if it had no digits.
func (l *line) value() uint8 {
	if l.n == 0 {
		return 0
	}
	return l.first*10 + l.last
}

// Calibrator computes calibration values. The zero value counts
// numerals only and logs nothing.
type Calibrator struct {
	Mode Mode

	// Logf, if non-nil, receives one line of trace per document line.
	Logf logger.Logf
}

// Calibrate is shorthand for (&Calibrator{Mode: mode}).Calibrate(doc).
func Calibrate(doc []byte, mode Mode) (uint64, error) {
	c := Calibrator{Mode: mode}
	return c.Calibrate(doc)
}

// Calibrate returns the sum of the calibration values of every line in doc.
// It fails only if doc contains a non-ASCII byte, in which case the error
// matches ErrMalformedInput.
func (c *Calibrator) Calibrate(doc []byte) (uint64, error) {
	var total uint64
	err := c.walk(doc, func(_ int, ln *line, _ bool) {
		total += uint64(ln.value())
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// Lines returns the calibration value of each line in doc, in order.
// Text after the final line break is a line only if it is non-empty.
func (c *Calibrator) Lines(doc []byte) ([]int, error) {
	var out []int
	err := c.walk(doc, func(_ int, ln *line, eof bool) {
		if eof && ln.size == 0 {
			return
		}
		out = append(out, int(ln.value()))
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Calibrator) logf() logger.Logf {
	if c.Logf == nil {
		return logger.Discard
	}
	return c.Logf
}

// walk scans doc to the end, calling onLine for each line it closes with
// the line's 1-based number. The last call has eof set; that line may be
// empty if doc ends with a line break.
func (c *Calibrator) walk(doc []byte, onLine func(num int, ln *line, eof bool)) error {
	logf := c.logf()
	s := NewScanner(doc)
	var (
		ln  line
		buf wordBuffer
		num = 1
	)
	closeLine := func(eof bool) {
		switch {
		case ln.n > 0:
			logf("line %d: first=%d last=%d value=%d", num, ln.first, ln.last, ln.value())
		case !eof || ln.size > 0:
			logf("line %d: no digits", num)
		}
		onLine(num, &ln, eof)
		ln = line{}
		buf.reset()
		num++
	}
	for {
		ch, err := s.Next()
		if err != nil {
			return fmt.Errorf("line %d: %w", num, err)
		}
		switch ch.Kind {
		case Digit:
			ln.size++
			ln.add(ch.Raw - '0')
			buf.reset()
		case Letter:
			ln.size++
			if c.Mode == DigitsAndWords {
				buf.push(ch.Raw)
				if d, ok := buf.match(); ok {
					ln.add(d)
				}
			}
		case LineBreak:
			closeLine(false)
		case EndOfInput:
			closeLine(true)
			return nil
		}
	}
}
