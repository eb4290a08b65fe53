package main

import "testing"

func TestNumberedLines(t *testing.T) {
	testCases := []struct {
		input string
		lines []string
	}{
		{"r 1 2", []string{"r 1 2"}},
		{"r 1 2\nf 3 4\nt", []string{"r 1 2", "f 3 4", "t"}},
		{"foo\n\nbar", []string{"foo", "", "bar"}},
	}
	for _, test := range testCases {
		count := 0
		for i, line := range numberedLines(test.input) {
			if i < 0 || i >= len(test.lines) {
				t.Errorf("numberedLines returned an invalid index: %d", i)
				continue
			}
			if line != test.lines[i] {
				t.Errorf("numberedLines returned an incorrect line: have %s, want %s",
					line, test.lines[i])
			}
			count++
		}
		if count != len(test.lines) {
			t.Errorf("numberedLines yielded %d lines, want %d", count, len(test.lines))
		}
	}
}
