package dto

import "github.com/DjordjeVuckovic/exprtree/internal/tree"

const (
	KindLiteral = "literal"
	KindUnary   = "unary"
	KindBinary  = "binary"
)

// Node is the JSON shape of an expression tree node.
type Node struct {
	Kind    string `json:"kind"`
	Value   string `json:"value"`
	Left    *Node  `json:"left,omitempty"`
	Right   *Node  `json:"right,omitempty"`
	Operand *Node  `json:"operand,omitempty"`
}

// NewNode converts a tree; the empty tree yields nil.
func NewNode(n tree.Node) *Node {
	switch v := n.(type) {
	case *tree.Leaf:
		return &Node{Kind: KindLiteral, Value: v.Value}
	case *tree.Unary:
		return &Node{Kind: KindUnary, Value: v.Op.String(), Operand: NewNode(v.Operand)}
	case *tree.Binary:
		return &Node{Kind: KindBinary, Value: v.Op.String(), Left: NewNode(v.Left), Right: NewNode(v.Right)}
	default:
		return nil
	}
}
