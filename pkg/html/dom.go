package html

import (
	"stickyfill/pkg/css"
)

type Node struct {
	Type       NodeType
	TagName    string
	Attributes map[string]string
	Text       string
	Children   []*Node
	Parent     *Node

	// styleRev counts writes to the inline style attribute. Layout and
	// tests use it as a cheap "did anything change" signal.
	styleRev int
}

type NodeType int

const (
	ElementNode NodeType = iota
	TextNode
)

type Document struct {
	Root *Node
}

func NewDocument() *Document {
	return &Document{
		Root: &Node{
			Type:     ElementNode,
			TagName:  "document",
			Children: make([]*Node, 0),
		},
	}
}

// NewElement creates a detached element node with the given tag name.
func NewElement(tag string) *Node {
	return &Node{
		Type:       ElementNode,
		TagName:    tag,
		Attributes: make(map[string]string),
		Children:   make([]*Node, 0),
	}
}

func (n *Node) GetAttribute(name string) (string, bool) {
	if n.Attributes == nil {
		return "", false
	}
	val, ok := n.Attributes[name]
	return val, ok
}

func (n *Node) SetAttribute(name, value string) {
	if n.Attributes == nil {
		n.Attributes = make(map[string]string)
	}
	n.Attributes[name] = value
}

// AddChild adds a child node and sets up the parent relationship
func (n *Node) AddChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// RemoveChild removes the given child from this node's children list,
// clears its parent pointer, and returns the removed child.
// Returns nil if child is not found.
func (n *Node) RemoveChild(child *Node) *Node {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			return child
		}
	}
	return nil
}

// InsertBefore inserts newChild before refChild in this node's children.
// If refChild is nil, appends newChild at the end.
// If newChild already has a parent, it is removed from that parent first.
func (n *Node) InsertBefore(newChild, refChild *Node) *Node {
	if newChild.Parent != nil {
		newChild.Parent.RemoveChild(newChild)
	}

	if refChild == nil {
		n.AddChild(newChild)
		return newChild
	}

	for i, c := range n.Children {
		if c == refChild {
			n.Children = append(n.Children, nil)
			copy(n.Children[i+1:], n.Children[i:])
			n.Children[i] = newChild
			newChild.Parent = n
			return newChild
		}
	}

	// refChild not found, append
	n.AddChild(newChild)
	return newChild
}

// IndexInParent returns this node's index in its parent's children list,
// or -1 if the node is detached.
func (n *Node) IndexInParent() int {
	if n.Parent == nil {
		return -1
	}
	for i, c := range n.Parent.Children {
		if c == n {
			return i
		}
	}
	return -1
}

// Contains reports whether other is a descendant of n (or n itself).
func (n *Node) Contains(other *Node) bool {
	for cur := other; cur != nil; cur = cur.Parent {
		if cur == n {
			return true
		}
	}
	return false
}

// CloneNode returns a copy of the node. If deep is true, all descendants
// are cloned recursively. The clone has no parent.
func (n *Node) CloneNode(deep bool) *Node {
	clone := &Node{
		Type:    n.Type,
		TagName: n.TagName,
		Text:    n.Text,
	}
	if n.Attributes != nil {
		clone.Attributes = make(map[string]string, len(n.Attributes))
		for k, v := range n.Attributes {
			clone.Attributes[k] = v
		}
	}
	if deep {
		for _, child := range n.Children {
			clone.AddChild(child.CloneNode(true))
		}
	}
	return clone
}

// InlineStyle parses the node's style attribute into a css.Style.
// Mutations to the returned Style are not written back; use SetStyle.
func (n *Node) InlineStyle() *css.Style {
	attr, _ := n.GetAttribute("style")
	return css.ParseInline(attr)
}

// StyleValue returns one inline style property.
func (n *Node) StyleValue(property string) (string, bool) {
	return n.InlineStyle().Get(property)
}

// SetStyle sets one inline style property, reserializing the style
// attribute.
func (n *Node) SetStyle(property, value string) {
	style := n.InlineStyle()
	style.Set(property, value)
	n.SetAttribute("style", style.FormatInline())
	n.styleRev++
}

// SetStyleLength sets one inline style property to a pixel length.
func (n *Node) SetStyleLength(property string, px float64) {
	n.SetStyle(property, css.FormatLength(px))
}

// RemoveStyle removes one inline style property. Absent properties do not
// count as a style write.
func (n *Node) RemoveStyle(property string) {
	style := n.InlineStyle()
	if _, ok := style.Get(property); !ok {
		return
	}
	style.Remove(property)
	n.SetAttribute("style", style.FormatInline())
	n.styleRev++
}

// StyleRevision returns the number of inline style writes on this node.
func (n *Node) StyleRevision() int {
	return n.styleRev
}
