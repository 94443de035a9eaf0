package bst

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xlab/treeprint"
)

const indent = "  "

// Print writes the shape of the tree to standard output. See Fprint.
func (t *Tree) Print() {
	// NOTE: a failed write to stdout is not actionable here
	_ = t.Fprint(os.Stdout)
}

// Fprint writes one line per value, visiting a node, then its right subtree,
// then its left subtree. Each level of depth is indented by two spaces. An
// empty tree writes nothing.
//
// The output is for debugging; it is not meant to be parsed back.
func (t *Tree) Fprint(w io.Writer) error {
	return t.root.fprint(w, 0)
}

func (n *node) fprint(w io.Writer, level int) error {
	if n == nil {
		return nil
	}
	if _, err := fmt.Fprintf(w, "%s%d\n", strings.Repeat(indent, level), n.value); err != nil {
		return err
	}
	if err := n.right.fprint(w, level+1); err != nil {
		return err
	}
	return n.left.fprint(w, level+1)
}

func (t *Tree) String() string {
	var sb strings.Builder
	// strings.Builder never returns a write error
	_ = t.Fprint(&sb)
	return sb.String()
}

// Branches renders the same shape as Fprint with box-drawing connectors.
func (t *Tree) Branches() string {
	if t.root == nil {
		return ""
	}
	tree := treeprint.NewWithRoot(label(t.root))
	t.root.addBranches(tree)
	return tree.String()
}

func (n *node) addBranches(tree treeprint.Tree) {
	for _, child := range []*node{n.right, n.left} {
		if child == nil {
			continue
		}
		if child.left == nil && child.right == nil {
			tree.AddNode(label(child))
			continue
		}
		child.addBranches(tree.AddBranch(label(child)))
	}
}

func label(n *node) string {
	return strconv.FormatInt(int64(n.value), 10)
}
