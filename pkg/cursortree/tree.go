// Package cursortree implements a single-owner tree whose nodes can gain
// children after creation, navigated through a lightweight cursor with a
// pre-order 'Next' traversal. Traversal order is defined purely by the
// structural position at the time Next is called, so a caller may append
// children to nodes the cursor already visited and still have them walked
// later in the same pass.
package cursortree

type node[T any] struct {
	content  T
	parent   *node[T]
	children []*node[T]
}

// Index of n among its parent's children, -1 for the root
func (n *node[T]) childIndex() int {
	if n.parent == nil {
		return -1
	}
	for i, child := range n.parent.children {
		if child == n {
			return i
		}
	}
	return -1
}

// Tree owns all of its nodes, it is not safe for concurrent use
type Tree[T any] struct {
	root *node[T]
}

// New creates a tree holding a single root node with the given content
func New[T any](content T) *Tree[T] {
	return &Tree[T]{root: &node[T]{content: content}}
}

// Root returns a cursor positioned at the root node
func (t *Tree[T]) Root() Cursor[T] {
	return Cursor[T]{tree: t, node: t.root}
}

// Cursor is a transient view into the tree, valid as long as the tree is.
// The zero value (and any cursor returned after walking past the last
// node) is the end sentinel.
type Cursor[T any] struct {
	tree *Tree[T]
	node *node[T]
}

func (c Cursor[T]) IsEnd() bool {
	return c.node == nil
}

func (c Cursor[T]) Content() T {
	return c.node.content
}

// Depth is the ancestor count from the root, 0 at the root
func (c Cursor[T]) Depth() int {
	depth := 0
	for n := c.node; n.parent != nil; n = n.parent {
		depth++
	}
	return depth
}

func (c Cursor[T]) NumChildren() int {
	return len(c.node.children)
}

// AppendChild attaches a new child under the node at the cursor, after any
// existing children, and returns a cursor still positioned at the parent
func (c Cursor[T]) AppendChild(content T) Cursor[T] {
	child := &node[T]{content: content, parent: c.node}
	c.node.children = append(c.node.children, child)
	return c
}

// FirstChild returns a cursor at the node's first child, End for a leaf
func (c Cursor[T]) FirstChild() Cursor[T] {
	if len(c.node.children) == 0 {
		return Cursor[T]{tree: c.tree}
	}
	return Cursor[T]{tree: c.tree, node: c.node.children[0]}
}

// Parent returns a cursor at the node's parent, End at the root
func (c Cursor[T]) Parent() Cursor[T] {
	return Cursor[T]{tree: c.tree, node: c.node.parent}
}

// NextSibling returns the next child of the same parent, End when the
// node is the last child or the root
func (c Cursor[T]) NextSibling() Cursor[T] {
	if c.node.parent == nil {
		return Cursor[T]{tree: c.tree}
	}
	if i := c.node.childIndex(); i+1 < len(c.node.parent.children) {
		return Cursor[T]{tree: c.tree, node: c.node.parent.children[i+1]}
	}
	return Cursor[T]{tree: c.tree}
}

// Next is the pre-order depth-first successor: the first child if any,
// otherwise the next sibling of the nearest ancestor, otherwise End
func (c Cursor[T]) Next() Cursor[T] {
	if len(c.node.children) > 0 {
		return Cursor[T]{tree: c.tree, node: c.node.children[0]}
	}

	for n := c.node; n.parent != nil; n = n.parent {
		if i := n.childIndex(); i+1 < len(n.parent.children) {
			return Cursor[T]{tree: c.tree, node: n.parent.children[i+1]}
		}
	}

	return Cursor[T]{tree: c.tree}
}
