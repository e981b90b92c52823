package tree

import (
	"strings"

	"github.com/DjordjeVuckovic/exprtree/internal/types/operator"
)

// Node is one of *Leaf, *Unary or *Binary. A nil Node is the empty tree.
type Node interface {
	String() string
	node()
}

// Leaf holds a literal exactly as it appeared in the input; the evaluator decides
// how to read it for its dialect.
type Leaf struct {
	Value string
}

// Unary is a prefix operator applied to a single operand.
type Unary struct {
	Op      operator.Operator
	Operand Node
}

type Binary struct {
	Op    operator.Operator
	Left  Node
	Right Node
}

func (*Leaf) node()   {}
func (*Unary) node()  {}
func (*Binary) node() {}

func (l *Leaf) String() string {
	return l.Value
}

func (u *Unary) String() string {
	return u.Op.String() + " " + u.Operand.String()
}

func (b *Binary) String() string {
	return "(" + b.Left.String() + " " + b.Op.String() + " " + b.Right.String() + ")"
}

// Postfix renders n back to postfix notation.
func Postfix(n Node) string {
	var parts []string
	walk(n, func(n Node) {
		switch v := n.(type) {
		case *Leaf:
			parts = append(parts, v.Value)
		case *Unary:
			parts = append(parts, v.Op.String())
		case *Binary:
			parts = append(parts, v.Op.String())
		}
	})
	return strings.Join(parts, " ")
}

// Size counts the nodes of the tree.
func Size(n Node) int {
	count := 0
	walk(n, func(Node) { count++ })
	return count
}

// walk visits children before their parent.
func walk(n Node, visit func(Node)) {
	switch v := n.(type) {
	case *Leaf:
		visit(v)
	case *Unary:
		walk(v.Operand, visit)
		visit(v)
	case *Binary:
		walk(v.Left, visit)
		walk(v.Right, visit)
		visit(v)
	}
}
