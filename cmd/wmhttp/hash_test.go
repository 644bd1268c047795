package main

import (
	"strings"
	"testing"
)

func TestReadSecretLine(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"newline", "foobar\n", "foobar", false},
		{"crlf", "foobar\r\n", "foobar", false},
		{"no trailing newline", "foobar", "foobar", false},
		{"only first line", "foobar\nsecond\n", "foobar", false},
		{"keeps spaces", "  foo bar \n", "  foo bar ", false},
		{"empty line", "\n", "", false},
		{"empty input", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readSecretLine(strings.NewReader(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}
