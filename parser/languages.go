package parser

import (
	"github.com/smacker/go-tree-sitter/bash"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/html"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/lua"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/sql"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// To add a language, import its grammar package and register it here.
func init() {
	Register("java", java.GetLanguage)
	Register("python", python.GetLanguage)
	Register("rust", rust.GetLanguage)
	Register("sql", sql.GetLanguage)
	Register("bash", bash.GetLanguage)
	Register("js", javascript.GetLanguage)

	Register("ts", typescript.GetLanguage)
	Register("tsx", tsx.GetLanguage)
	Register("go", golang.GetLanguage)
	Register("c", c.GetLanguage)
	Register("lua", lua.GetLanguage)
	Register("html", html.GetLanguage)
}
