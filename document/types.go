package document

// Point is a zero-based row/column location in the source
type Point struct {
	Row    uint32
	Column uint32
}

// Span holds the scalar facts a cursor exposes about the node it is on
type Span struct {
	Kind          string
	StartPosition Point
	EndPosition   Point
	StartByte     uint32
	EndByte       uint32
	ChildCount    uint32
}

// Cursor is a read-only view over an externally owned syntax tree.
// Implementations move between nodes without copying the tree.
type Cursor interface {
	Current() Span
	GoToFirstChild() bool
	GoToNextSibling() bool
	GoToParent() bool
}

// Position serializes as a two-element [row, column] array
type Position [2]uint32

// NewPosition converts a Point to its serialized form
func NewPosition(p Point) Position {
	return Position{p.Row, p.Column}
}

// Row returns the zero-based row
func (p Position) Row() uint32 { return p[0] }

// Column returns the zero-based byte column
func (p Position) Column() uint32 { return p[1] }

// Node is the serializable mirror of one parse node
type Node struct {
	Type          string   `json:"type" yaml:"type"`
	StartPosition Position `json:"start_position" yaml:"start_position,flow"`
	EndPosition   Position `json:"end_position" yaml:"end_position,flow"`
	Text          string   `json:"text" yaml:"text"`
	Children      []*Node  `json:"children,omitempty" yaml:"children,omitempty"`
}

// Count returns the number of nodes in the document rooted at n
func (n *Node) Count() int {
	count := 1
	for _, child := range n.Children {
		count += child.Count()
	}
	return count
}
