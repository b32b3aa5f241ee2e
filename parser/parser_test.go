package parser

import (
	"context"
	"path/filepath"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/hannajonsd/treejson/document"
)

func parseFixture(t *testing.T, language, name string) *ParseResult {
	t.Helper()

	p, err := CreateParser(language)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(p.Close)

	result, err := p.ParseFile(context.Background(), filepath.Join("..", "testdata", name), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(result.Close)

	return result
}

func flatten(n *document.Node, out []*document.Node) []*document.Node {
	out = append(out, n)
	for _, child := range n.Children {
		out = flatten(child, out)
	}
	return out
}

func TestParse_SingleInteger(t *testing.T) {
	result := parseFixture(t, "python", "one.py")

	doc, err := result.Document()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Type != "module" {
		t.Errorf("expected root type module, got %q", doc.Type)
	}

	wantChain := []string{"module", "expression_statement", "integer"}
	node := doc
	for i, kind := range wantChain {
		if node.Type != kind {
			t.Fatalf("depth %d: expected %q, got %q", i, kind, node.Type)
		}
		if node.Text != "1" {
			t.Errorf("depth %d: expected text %q, got %q", i, "1", node.Text)
		}
		if i == len(wantChain)-1 {
			break
		}
		if len(node.Children) != 1 {
			t.Fatalf("depth %d: expected exactly one child, got %d", i, len(node.Children))
		}
		node = node.Children[0]
	}

	if node.Children != nil {
		t.Errorf("expected leaf without children field, got %v", node.Children)
	}
	if node.StartPosition != (document.Position{0, 0}) || node.EndPosition != (document.Position{0, 1}) {
		t.Errorf("expected span [0 0]-[0 1], got %v-%v", node.StartPosition, node.EndPosition)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	result := parseFixture(t, "python", "empty.py")

	doc, err := result.Document()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Text != "" {
		t.Errorf("expected empty text, got %q", doc.Text)
	}
	if doc.Children != nil {
		t.Errorf("expected no children field, got %v", doc.Children)
	}
	if doc.Count() != 1 {
		t.Errorf("expected a single node, got %d", doc.Count())
	}
}

func TestParse_DocumentMirrorsTree(t *testing.T) {
	fixtures := []struct {
		language string
		file     string
	}{
		{"python", "hello.py"},
		{"go", "example.go"},
		{"html", "page.html"},
	}

	for _, f := range fixtures {
		t.Run(f.file, func(t *testing.T) {
			result := parseFixture(t, f.language, f.file)

			doc, err := result.Document()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var spans []document.Span
			WalkAST(result.Tree.RootNode(), func(n *sitter.Node, _ int) {
				spans = append(spans, SpanOf(n))
			})

			nodes := flatten(doc, nil)
			if len(nodes) != len(spans) {
				t.Fatalf("expected %d nodes, got %d", len(spans), len(nodes))
			}
			if stats := result.Stats(); stats.Nodes != len(nodes) {
				t.Errorf("stats count %d does not match document count %d", stats.Nodes, len(nodes))
			}

			for i, span := range spans {
				node := nodes[i]
				if node.Type != span.Kind {
					t.Errorf("node %d: expected type %q, got %q", i, span.Kind, node.Type)
				}
				if want := string(result.Source[span.StartByte:span.EndByte]); node.Text != want {
					t.Errorf("node %d (%s): expected text %q, got %q", i, span.Kind, want, node.Text)
				}
				if (span.ChildCount > 0) != (node.Children != nil) {
					t.Errorf("node %d (%s): child count %d but children %v", i, span.Kind, span.ChildCount, node.Children)
				}

				start, end := node.StartPosition, node.EndPosition
				if start.Row() > end.Row() || (start.Row() == end.Row() && start.Column() > end.Column()) {
					t.Errorf("node %d (%s): start %v after end %v", i, span.Kind, start, end)
				}
			}
		})
	}
}

func TestParse_KeepsSyntaxErrors(t *testing.T) {
	p, err := CreateParser("js")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer p.Close()

	result, err := p.Parse(context.Background(), []byte("let = ;"))
	if err != nil {
		t.Fatalf("expected a tree for invalid input, got %v", err)
	}
	defer result.Close()

	stats := result.Stats()
	if !stats.HasError {
		t.Errorf("expected tree to report errors")
	}

	doc, err := result.Document()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Count() != stats.Nodes {
		t.Errorf("expected %d nodes, got %d", stats.Nodes, doc.Count())
	}
}

func TestParseFile_MissingFile(t *testing.T) {
	p, err := CreateParser("python")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer p.Close()

	if _, err := p.ParseFile(context.Background(), filepath.Join("..", "testdata", "missing.py"), nil); err == nil {
		t.Errorf("expected error for missing file")
	}
}
