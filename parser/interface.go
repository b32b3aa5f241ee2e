package parser

import (
	"context"
	"io"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/hannajonsd/treejson/document"
)

// Parser defines the interface for a grammar-bound source code parser
type Parser interface {
	GetLanguage() string
	Close()
	Parse(ctx context.Context, source []byte) (*ParseResult, error)
	ParseFile(ctx context.Context, filePath string, stdin io.Reader) (*ParseResult, error)
}

// BaseParser wraps a tree-sitter parser configured with one grammar
type BaseParser struct {
	parser   *sitter.Parser
	language *sitter.Language
	langName string
}

// ParseResult contains the parsed tree and the source it was built from
type ParseResult struct {
	Tree     *sitter.Tree
	Source   []byte
	Language string
	FilePath string
}

// TreeStats summarizes a parse tree
type TreeStats struct {
	Nodes    int
	MaxDepth int
	HasError bool
}

// Document converts the whole tree into its serializable mirror
func (r *ParseResult) Document() (*document.Node, error) {
	cursor := r.Cursor()
	defer cursor.Close()

	return document.Convert(cursor, r.Source)
}

// Close releases the tree
func (r *ParseResult) Close() {
	if r.Tree != nil {
		r.Tree.Close()
	}
}
