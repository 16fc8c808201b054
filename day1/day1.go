// The day1 command solves the trebuchet calibration puzzle.
package main

import (
	_ "embed"
	"log"

	"github.com/maisem/trebuchet"
	"github.com/maisem/trebuchet/calibrate"
)

func main() {
	trebuchet.Run(2023, source, &solver{})
}

//go:embed day1.go
var source []byte

type solver struct {
	*trebuchet.Puzzle
}

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s solver) D1p1() any {
	return s.calibrate(calibrate.DigitsOnly)
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (s solver) D1p2() any {
	return s.calibrate(calibrate.DigitsAndWords)
}

func (s solver) calibrate(mode calibrate.Mode) any {
	c := &calibrate.Calibrator{Mode: mode, Logf: s.Debugf}
	in := s.Input()
	total := trebuchet.MustGet(c.Calibrate(in))
	if s.Debugging() {
		lines := trebuchet.MustGet(c.Lines(in))
		if sum := trebuchet.Sum(lines...); uint64(sum) != total {
			log.Fatalf("%v: per-line sum %d != total %d", mode, sum, total)
		}
		s.Debug(mode, "lines:", len(lines))
	}
	return total
}
