package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguageSlugFromFilename(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"index.js", "javascript"},
		{"App.JSX", "javascript"},
		{"latihan.ts", "typescript"},
		{"solusi.py", "python"},
		{"main.go", "go"},
		{"styles.css", "css"},
		{"query.sql", "sql"},
		{"arsip.tar.gz", ""},
		{"README", ""},
		{"", ""},
		{"folder/nested/script.sh", "shell"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DetectLanguageSlugFromFilename(tc.filename), "filename=%q", tc.filename)
	}
}
