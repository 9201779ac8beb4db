package structure

import (
	"fortio.org/safecast"
	sitter "github.com/smacker/go-tree-sitter"
)

// WalkAST recursively traverses an AST and applies a visitor function to each node
func WalkAST(node *sitter.Node, visitor func(*sitter.Node)) {
	visitor(node)

	for i := 0; i < int(node.ChildCount()); i++ {
		WalkAST(node.Child(i), visitor)
	}
}

// nodeText returns the source text covered by a node
func nodeText(node *sitter.Node, source []byte) string {
	return string(source[node.StartByte():node.EndByte()])
}

// fieldText returns the text of a named child field, or "" when absent
func fieldText(node *sitter.Node, field string, source []byte) string {
	child := node.ChildByFieldName(field)
	if child == nil {
		return ""
	}
	return nodeText(child, source)
}

// lineOf converts a node's zero-based row to a 1-based source line number
func lineOf(node *sitter.Node) int {
	row, err := safecast.Conv[int](node.StartPoint().Row)
	if err != nil {
		return 0
	}
	return row + 1
}
