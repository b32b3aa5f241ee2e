package parser

import (
	"context"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
)

// StdinName is the filename that selects standard input
const StdinName = "-"

// ReadSource reads the whole of filePath, or stdin when filePath is "-"
func ReadSource(filePath string, stdin io.Reader) ([]byte, error) {
	var (
		source []byte
		err    error
	)

	switch filePath {
	case "":
		return nil, ErrNoInput
	case StdinName:
		if stdin == nil {
			stdin = os.Stdin
		}
		source, err = io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read standard input: %w", err)
		}
	default:
		source, err = os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
		}
	}

	if !utf8.Valid(source) {
		return nil, fmt.Errorf("failed to read %s: %w", filePath, ErrInvalidUTF8)
	}

	return source, nil
}

// WalkAST recursively traverses a tree in pre-order, passing each node and its depth to visitor
func WalkAST(node *sitter.Node, visitor func(n *sitter.Node, depth int)) {
	walkAST(node, 0, visitor)
}

func walkAST(node *sitter.Node, depth int, visitor func(*sitter.Node, int)) {
	visitor(node, depth)

	for i := 0; i < int(node.ChildCount()); i++ {
		walkAST(node.Child(i), depth+1, visitor)
	}
}

// Parse parses source once with the configured grammar
func (bp *BaseParser) Parse(ctx context.Context, source []byte) (*ParseResult, error) {
	tree, err := bp.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s source: %w", bp.langName, err)
	}
	if tree == nil {
		return nil, fmt.Errorf("%w for %s source", ErrParseFailed, bp.langName)
	}

	return &ParseResult{
		Tree:     tree,
		Source:   source,
		Language: bp.langName,
	}, nil
}

// ParseFile reads filePath (or stdin for "-") and parses it
func (bp *BaseParser) ParseFile(ctx context.Context, filePath string, stdin io.Reader) (*ParseResult, error) {
	source, err := ReadSource(filePath, stdin)
	if err != nil {
		return nil, err
	}

	result, err := bp.Parse(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", filePath, err)
	}
	result.FilePath = filePath

	return result, nil
}

// GetLanguage returns the language identifier this parser was created for
func (bp *BaseParser) GetLanguage() string {
	return bp.langName
}

func (bp *BaseParser) Close() {
	bp.parser.Close()
}

// Stats counts the nodes of the tree and records its depth
func (r *ParseResult) Stats() TreeStats {
	root := r.Tree.RootNode()
	stats := TreeStats{HasError: root.HasError()}

	WalkAST(root, func(_ *sitter.Node, depth int) {
		stats.Nodes++
		if depth > stats.MaxDepth {
			stats.MaxDepth = depth
		}
	})

	return stats
}
