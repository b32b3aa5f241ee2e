package document

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	ErrSpanOutOfRange = errors.New("node span outside source buffer")
	ErrSplitRune      = errors.New("node span splits a UTF-8 sequence")
)

// Convert builds the document tree for the node under the cursor and all of
// its descendants. Children keep the engine's left-to-right order and every
// node is kept, including ERROR and MISSING nodes.
func Convert(c Cursor, source []byte) (*Node, error) {
	span := c.Current()

	text, err := sliceText(span, source)
	if err != nil {
		return nil, err
	}

	node := &Node{
		Type:          span.Kind,
		StartPosition: NewPosition(span.StartPosition),
		EndPosition:   NewPosition(span.EndPosition),
		Text:          text,
	}

	if span.ChildCount == 0 {
		return node, nil
	}

	if c.GoToFirstChild() {
		node.Children = make([]*Node, 0, span.ChildCount)
		for {
			child, err := Convert(c, source)
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, child)

			if !c.GoToNextSibling() {
				break
			}
		}
		c.GoToParent()
	}

	return node, nil
}

// sliceText returns source[StartByte:EndByte], refusing offsets that would
// produce a corrupted string
func sliceText(span Span, source []byte) (string, error) {
	start, end := int(span.StartByte), int(span.EndByte)

	if start > end || end > len(source) {
		return "", fmt.Errorf("%w: %s [%d, %d) in %d bytes", ErrSpanOutOfRange, span.Kind, start, end, len(source))
	}
	if !onRuneBoundary(source, start) || !onRuneBoundary(source, end) {
		return "", fmt.Errorf("%w: %s [%d, %d)", ErrSplitRune, span.Kind, start, end)
	}

	return string(source[start:end]), nil
}

func onRuneBoundary(source []byte, offset int) bool {
	if offset == len(source) {
		return true
	}
	return utf8.RuneStart(source[offset])
}
