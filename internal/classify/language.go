package classify

import "strings"

// languageByExt maps lowercase file extensions to canonical language names.
var languageByExt = map[string]string{
	"rs":     "rust",
	"py":     "python",
	"js":     "javascript",
	"jsx":    "javascript",
	"mjs":    "javascript",
	"cjs":    "javascript",
	"ts":     "typescript",
	"tsx":    "typescript",
	"sql":    "sql",
	"md":     "markdown",
	"json":   "json",
	"yaml":   "yaml",
	"yml":    "yaml",
	"toml":   "toml",
	"html":   "html",
	"htm":    "html",
	"css":    "css",
	"scss":   "css",
	"less":   "css",
	"sh":     "shell",
	"bash":   "shell",
	"zsh":    "shell",
	"go":     "go",
	"mod":    "go",
	"java":   "java",
	"kt":     "kotlin",
	"kts":    "kotlin",
	"swift":  "swift",
	"c":      "c",
	"h":      "c",
	"cpp":    "cpp",
	"cc":     "cpp",
	"cxx":    "cpp",
	"hpp":    "cpp",
	"hxx":    "cpp",
	"rb":     "ruby",
	"php":    "php",
	"vue":    "vue",
	"svelte": "svelte",
	"lua":    "lua",
	"r":      "r",
	"ex":     "elixir",
	"exs":    "elixir",
	"erl":    "erlang",
	"hrl":    "erlang",
	"scala":  "scala",
	"sc":     "scala",
	"fs":     "fsharp",
	"fsi":    "fsharp",
	"fsx":    "fsharp",
	"zig":    "zig",
	"v":      "v",
	"nim":    "nim",
	"cr":     "crystal",
}

// LanguageForFile infers a language name from the extension of the final
// path segment. Recognized extensions map to canonical names; unrecognized
// ones pass through lowercased. Files without an extension yield "unknown".
func LanguageForFile(relativeFile string) string {
	base := relativeFile
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}
	dot := strings.LastIndex(base, ".")
	if dot <= 0 || dot == len(base)-1 {
		return "unknown"
	}
	ext := strings.ToLower(base[dot+1:])
	if lang, ok := languageByExt[ext]; ok {
		return lang
	}
	return ext
}
