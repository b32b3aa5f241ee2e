package parser

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/hannajonsd/treejson/document"
)

// TreeCursor adapts a tree-sitter cursor to document.Cursor
type TreeCursor struct {
	cursor *sitter.TreeCursor
}

// NewTreeCursor starts a cursor at node
func NewTreeCursor(node *sitter.Node) *TreeCursor {
	return &TreeCursor{cursor: sitter.NewTreeCursor(node)}
}

// Cursor starts a cursor at the root of the parsed tree
func (r *ParseResult) Cursor() *TreeCursor {
	return NewTreeCursor(r.Tree.RootNode())
}

func (c *TreeCursor) Current() document.Span {
	return SpanOf(c.cursor.CurrentNode())
}

func (c *TreeCursor) GoToFirstChild() bool { return c.cursor.GoToFirstChild() }
func (c *TreeCursor) GoToNextSibling() bool { return c.cursor.GoToNextSibling() }
func (c *TreeCursor) GoToParent() bool { return c.cursor.GoToParent() }

func (c *TreeCursor) Close() {
	c.cursor.Close()
}

// SpanOf reads the scalar facts of a node
func SpanOf(node *sitter.Node) document.Span {
	start, end := node.StartPoint(), node.EndPoint()

	return document.Span{
		Kind:          node.Type(),
		StartPosition: document.Point{Row: start.Row, Column: start.Column},
		EndPosition:   document.Point{Row: end.Row, Column: end.Column},
		StartByte:     node.StartByte(),
		EndByte:       node.EndByte(),
		ChildCount:    node.ChildCount(),
	}
}
