package main

import (
	"encoding/json"
	"iter"
	"net/http"
	"strings"
)

// numberedLines yields each line of s with its zero-based line number,
// for command errors that point at the offending line.
func numberedLines(s string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, line := range strings.Split(s, "\n") {
			if !yield(i, line) {
				return
			}
		}
	}
}

func sendJSON(w http.ResponseWriter, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	_, err = w.Write(payload)
	return err
}
