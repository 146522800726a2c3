package constants

import (
	"path/filepath"
	"strings"
)

// Tabel tetap ekstensi file → slug bahasa editor. Sumber kebenaran tunggal
// untuk inferensi bahasa dari nama file workspace.
var extToLanguageSlug = map[string]string{
	".js":    "javascript",
	".jsx":   "javascript",
	".mjs":   "javascript",
	".ts":    "typescript",
	".tsx":   "typescript",
	".py":    "python",
	".go":    "go",
	".java":  "java",
	".c":     "c",
	".h":     "c",
	".cpp":   "cpp",
	".cc":    "cpp",
	".hpp":   "cpp",
	".cs":    "csharp",
	".rb":    "ruby",
	".php":   "php",
	".rs":    "rust",
	".kt":    "kotlin",
	".swift": "swift",
	".html":  "html",
	".css":   "css",
	".sql":   "sql",
	".sh":    "shell",
	".json":  "json",
}

// DetectLanguageSlugFromFilename mengembalikan slug bahasa dari ekstensi file,
// atau string kosong kalau tidak dikenali.
func DetectLanguageSlugFromFilename(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return extToLanguageSlug[ext]
}
