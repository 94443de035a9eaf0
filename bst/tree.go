package bst

import (
	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
)

// A node exclusively owns its children; nodes are never shared and there are
// no parent pointers.
type node struct {
	value int32
	left  *node
	right *node
}

func leaf(value int32) *node {
	return &node{value: value}
}

// Tree is an unbalanced binary search tree of distinct int32 values. Its shape
// depends only on the order of Insert and Remove calls. The zero value is an
// empty tree. A Tree is not safe for concurrent use.
type Tree struct {
	root *node
	size uint64
}

func New() *Tree {
	return &Tree{}
}

// Insert adds value as a new leaf. If value is already present the tree is
// unchanged and the error is a *DuplicateKeyError.
func (t *Tree) Insert(value int32) error {
	root, err := t.root.insert(value)
	if err != nil {
		return err
	}
	t.root = root
	t.size = std.SumAssumeNoOverflow(t.size, 1)
	return nil
}

func (n *node) insert(value int32) (*node, error) {
	if n == nil {
		return leaf(value), nil
	}
	var err error
	// modify in-place
	if value < n.value {
		n.left, err = n.left.insert(value)
	} else if n.value < value {
		n.right, err = n.right.insert(value)
	} else {
		return n, &DuplicateKeyError{Value: value}
	}
	return n, err
}

// Remove deletes value from the tree and reports whether it was present.
// Removing an absent value leaves the tree untouched.
func (t *Tree) Remove(value int32) bool {
	root, removed := t.root.remove(value)
	t.root = root
	if removed {
		t.size--
	}
	return removed
}

// remove returns the subtree rooted at n with value removed.
func (n *node) remove(value int32) (*node, bool) {
	if n == nil {
		return n, false
	}
	var removed bool
	if n.value < value {
		n.right, removed = n.right.remove(value)
		return n, removed
	}
	if value < n.value {
		n.left, removed = n.left.remove(value)
		return n, removed
	}

	if n.left == nil {
		return n.right, true
	}
	if n.right == nil {
		return n.left, true
	}

	// two children: n keeps its place and takes the in-order successor's
	// value, then the successor is spliced out of the right subtree
	succ := n.right.min()
	n.value = succ.value
	n.right, removed = n.right.remove(succ.value)
	primitive.Assert(removed)
	return n, true
}

// min returns the left-most node of a non-empty subtree.
func (n *node) min() *node {
	var m = n
	for m.left != nil {
		m = m.left
	}
	return m
}

func (t *Tree) Contains(value int32) bool {
	return t.root.contains(value)
}

func (n *node) contains(value int32) bool {
	if n == nil {
		return false
	}
	if value == n.value {
		return true
	}
	if value < n.value {
		return n.left.contains(value)
	}
	return n.right.contains(value)
}

// Len returns the number of values in the tree.
func (t *Tree) Len() int {
	return int(t.size)
}

// Root returns the value at the root. The boolean is false if the tree is
// empty.
func (t *Tree) Root() (int32, bool) {
	if t.root == nil {
		return 0, false
	}
	return t.root.value, true
}
