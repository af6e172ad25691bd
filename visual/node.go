// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package visual

import (
	"slices"

	"github.com/gogpu/gg/scene"
)

// drawOp is one recorded fill or stroke of a node.
type drawOp struct {
	shape  scene.Shape
	brush  scene.Brush
	stroke *scene.StrokeStyle // nil for fills
}

// Node is a retained scene node: a content box of a given size, a
// position inside its parent, its own draw operations and child nodes.
//
// Node is not safe for concurrent use.
type Node struct {
	name      string
	width     float64
	height    float64
	x, y      float64
	parent    *Node
	children  []*Node
	ops       []drawOp
	destroyed bool
}

// Ensure Node implements Recorder.
var _ Recorder = (*Node)(nil)

// NewNode creates a detached node with the given content size.
func NewNode(name string, width, height float64) *Node {
	return &Node{
		name:   name,
		width:  width,
		height: height,
	}
}

// Name returns the node name.
func (n *Node) Name() string {
	return n.name
}

// Size returns the content size of the node.
func (n *Node) Size() (width, height float64) {
	return n.width, n.height
}

// SetSize changes the content size of the node.
func (n *Node) SetSize(width, height float64) {
	n.width = width
	n.height = height
}

// Position returns the top-left corner of the node in its parent's space.
func (n *Node) Position() (x, y float64) {
	return n.x, n.y
}

// SetPosition moves the node inside its parent.
func (n *Node) SetPosition(x, y float64) {
	n.x = x
	n.y = y
}

// Parent returns the parent node, or nil for a detached node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Valid reports whether the node has not been destroyed.
func (n *Node) Valid() bool {
	return n != nil && !n.destroyed
}

// AddChild attaches c as the last child of n, detaching it from any
// previous parent first.
func (n *Node) AddChild(c *Node) error {
	if !n.Valid() || !c.Valid() {
		return ErrDestroyed
	}
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	c.parent = n
	n.children = append(n.children, c)
	return nil
}

// RemoveChild detaches c from n. It reports whether c was a child of n.
func (n *Node) RemoveChild(c *Node) bool {
	i := slices.Index(n.children, c)
	if i < 0 {
		return false
	}
	n.children = slices.Delete(n.children, i, i+1)
	c.parent = nil
	return true
}

// RemoveFromParent detaches n from its parent, if any.
func (n *Node) RemoveFromParent() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// Destroy detaches the node, destroys its children and drops its content.
// A destroyed node is no longer valid. Destroy is idempotent.
func (n *Node) Destroy() {
	if n.destroyed {
		return
	}
	n.RemoveFromParent()
	for _, c := range n.children {
		c.parent = nil
		c.Destroy()
	}
	n.children = nil
	n.ops = nil
	n.destroyed = true
}

// Fill records a filled shape in local coordinates.
func (n *Node) Fill(shape scene.Shape, brush scene.Brush) *Node {
	n.ops = append(n.ops, drawOp{shape: shape, brush: brush})
	return n
}

// Stroke records a stroked shape in local coordinates.
func (n *Node) Stroke(shape scene.Shape, brush scene.Brush, width float32) *Node {
	style := scene.DefaultStrokeStyle()
	style.Width = width
	n.ops = append(n.ops, drawOp{shape: shape, brush: brush, stroke: style})
	return n
}

// Record appends the node's own content and the content of its valid
// children to s. The node's position is ignored; children are placed at
// their positions relative to this node's top-left corner.
func (n *Node) Record(s *scene.Scene) {
	if !n.Valid() {
		return
	}
	for _, op := range n.ops {
		if op.stroke != nil {
			s.Stroke(op.stroke, scene.IdentityAffine(), op.brush, op.shape)
			continue
		}
		s.Fill(scene.FillNonZero, scene.IdentityAffine(), op.brush, op.shape)
	}
	for _, c := range n.children {
		if !c.Valid() {
			continue
		}
		s.PushTransform(scene.TranslateAffine(float32(c.x), float32(c.y)))
		c.Record(s)
		s.PopTransform()
	}
}
