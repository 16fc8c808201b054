package calibrate

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCalibrateDigitsOnly(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"1abc2", 12},
		{"pqr3stu8vwx", 38},
		{"a1b2c3d4e5f", 15},
		{"treb7uchet", 77},
		{"1abc2\npqr3stu8vwx\na1b2c3d4e5f\ntreb7uchet", 142},
		{"1abc2\npqr3stu8vwx\na1b2c3d4e5f\ntreb7uchet\n", 142},
		{"ab1de", 11},
		{"a2i3e", 23},
		{"a4b5d6e", 46},
		{"a7bi89d0e", 70},
		{"abide", 0},
		{"a1b2\nid3", 45},
		{"two1nine", 11},
		{"eightwothree", 0},
		{"", 0},
		{"\n\n", 0},
		{"0", 0},
		{"05", 5},
	}
	for _, tt := range tests {
		got, err := Calibrate([]byte(tt.in), DigitsOnly)
		if err != nil {
			t.Errorf("Calibrate(%q, DigitsOnly): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Calibrate(%q, DigitsOnly) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCalibrateDigitsAndWords(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"two1nine", 29},
		{"eightwothree", 83},
		{"abcone2threexyz", 13},
		{"xtwone3four", 24},
		{"4nineeightseven2", 42},
		{"zoneight234", 14},
		{"7pqrstsixteen", 76},
		{"one23456789", 19},
		{"onetwo3456789", 19},
		{"otthreeff6789", 39},
		{"xtwone3four\n4nineeightseven2", 66},
		{"4nineeightseven2\nzoneight234\n7pqrstsixteen", 132},

		// Shared letters.
		{"twone", 21},
		{"eightwo", 82},
		{"oneight", 18},
		{"sevenine", 79},
		{"threeight", 38},
		{"zerone", 1},

		// A digit breaks a word in progress.
		{"on1e", 11},
		{"thr3ee", 33},
		{"2threexyz", 23},

		// Only lowercase words count.
		{"ONE2", 22},
		{"Three", 0},

		{"nothing", 0},
		{"nine", 99},
	}
	for _, tt := range tests {
		got, err := Calibrate([]byte(tt.in), DigitsAndWords)
		if err != nil {
			t.Errorf("Calibrate(%q, DigitsAndWords): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Calibrate(%q, DigitsAndWords) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCalibrateSampleJoined(t *testing.T) {
	lines := []string{
		"two1nine",
		"eightwothree",
		"abcone2threexyz",
		"xtwone3four",
		"4nineeightseven2",
		"zoneight234",
		"7pqrstsixteen",
	}
	got, err := Calibrate([]byte(strings.Join(lines, "\n")), DigitsAndWords)
	if err != nil {
		t.Fatal(err)
	}
	if got != 281 {
		t.Errorf("Calibrate(sample) = %v, want 281", got)
	}
}

func TestCalibrateLargeTotal(t *testing.T) {
	doc := strings.Repeat("9nine\n", 1000)
	for _, mode := range []Mode{DigitsOnly, DigitsAndWords} {
		got, err := Calibrate([]byte(doc), mode)
		if err != nil {
			t.Fatal(err)
		}
		if got != 99000 {
			t.Errorf("Calibrate(1000 lines, %v) = %v, want 99000", mode, got)
		}
	}
}

func TestCalibrateMalformed(t *testing.T) {
	for _, mode := range []Mode{DigitsOnly, DigitsAndWords} {
		got, err := Calibrate([]byte("12\nab\x80cd\n34"), mode)
		if !errors.Is(err, ErrMalformedInput) {
			t.Fatalf("Calibrate(%v) error = %v, want ErrMalformedInput", mode, err)
		}
		if !strings.Contains(err.Error(), "line 2") {
			t.Errorf("error %q does not name line 2", err)
		}
		if got != 0 {
			t.Errorf("Calibrate(%v) = %v on error, want 0", mode, got)
		}
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		in   string
		mode Mode
		want []int
	}{
		{"", DigitsOnly, nil},
		{"\n", DigitsOnly, []int{0}},
		{"1abc2\n\nabc\ntreb7uchet\n", DigitsOnly, []int{12, 0, 0, 77}},
		{"1abc2\n\nabc\ntreb7uchet", DigitsOnly, []int{12, 0, 0, 77}},
		{"two1nine\nxtwone3four\n", DigitsAndWords, []int{29, 24}},
		{"two1nine\nxtwone3four\n", DigitsOnly, []int{11, 33}},
	}
	for _, tt := range tests {
		c := Calibrator{Mode: tt.mode}
		got, err := c.Lines([]byte(tt.in))
		if err != nil {
			t.Errorf("Lines(%q): %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Lines(%q, %v) mismatch (-want +got):\n%s", tt.in, tt.mode, diff)
		}
		var sum uint64
		for _, v := range got {
			sum += uint64(v)
		}
		total, err := c.Calibrate([]byte(tt.in))
		if err != nil {
			t.Fatal(err)
		}
		if sum != total {
			t.Errorf("sum of Lines(%q) = %v, Calibrate = %v", tt.in, sum, total)
		}
	}
}

func TestLogf(t *testing.T) {
	var got []string
	c := Calibrator{
		Mode: DigitsAndWords,
		Logf: func(format string, args ...any) {
			got = append(got, fmt.Sprintf(format, args...))
		},
	}
	if _, err := c.Calibrate([]byte("a1\nxyz\neightwo\n")); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"line 1: first=1 last=1 value=11",
		"line 2: no digits",
		"line 3: first=8 last=2 value=82",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}
}

func TestWordBufferBounded(t *testing.T) {
	var w wordBuffer
	for _, c := range []byte("abcdefgh") {
		w.push(c)
		if w.n > maxWordLen {
			t.Fatalf("buffer holds %d letters, max %d", w.n, maxWordLen)
		}
	}
	if got := string(w.b[:w.n]); got != "defgh" {
		t.Errorf("buffer = %q, want %q", got, "defgh")
	}
	for _, word := range digitWords {
		if len(word) > maxWordLen {
			t.Errorf("digit word %q longer than maxWordLen %d", word, maxWordLen)
		}
	}
}

func TestModeString(t *testing.T) {
	if got := DigitsOnly.String(); got != "digits" {
		t.Errorf("DigitsOnly.String() = %q", got)
	}
	if got := DigitsAndWords.String(); got != "digits+words" {
		t.Errorf("DigitsAndWords.String() = %q", got)
	}
}
