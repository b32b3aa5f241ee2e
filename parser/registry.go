package parser

import (
	"fmt"
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// Grammar pairs a language identifier with the tree-sitter grammar it selects
type Grammar struct {
	Name     string
	Language func() *sitter.Language
}

var grammars = make(map[string]Grammar)

// Register adds a grammar under name. It panics on an empty or duplicate name.
func Register(name string, language func() *sitter.Language) {
	if name == "" {
		panic("parser: Register called with empty language name")
	}
	if language == nil {
		panic("parser: Register called with nil language for " + name)
	}
	if _, dup := grammars[name]; dup {
		panic("parser: Register called twice for language " + name)
	}
	grammars[name] = Grammar{Name: name, Language: language}
}

// Lookup returns the grammar registered under name. Names are case-sensitive.
func Lookup(name string) (Grammar, error) {
	if name == "" {
		return Grammar{}, ErrNoLanguage
	}

	grammar, ok := grammars[name]
	if !ok {
		return Grammar{}, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownLanguage, name, strings.Join(Languages(), ", "))
	}

	return grammar, nil
}

// Languages returns every registered identifier in sorted order
func Languages() []string {
	names := make([]string, 0, len(grammars))
	for name := range grammars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateParser creates a parser configured with the named grammar
func CreateParser(name string) (Parser, error) {
	grammar, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	language := grammar.Language()
	if language == nil {
		return nil, fmt.Errorf("%w: grammar %s has no language", ErrEngineInit, name)
	}

	parser := sitter.NewParser()
	parser.SetLanguage(language)

	return &BaseParser{
		parser:   parser,
		language: language,
		langName: name,
	}, nil
}
