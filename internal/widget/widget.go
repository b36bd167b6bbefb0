// Package widget models the host elements keystrokes are delivered to.
package widget

import (
	"reflect"
	"strings"

	"github.com/google/uuid"
)

// NodeType classifies a node in the host's element tree.
type NodeType uint8

// Node types, numbered as in the DOM.
const (
	NodeNone     NodeType = 0
	ElementNode  NodeType = 1
	TextNode     NodeType = 3
	CommentNode  NodeType = 8
	DocumentNode NodeType = 9
)

// TagTextArea is the tag of the plain-text area elements actions operate on.
const TagTextArea = "TEXTAREA"

// Element is the part of a host element the dispatcher looks at.
type Element interface {
	// NodeType returns the node kind.
	NodeType() NodeType

	// TagName returns the upper-case tag name.
	TagName() string

	// ClassName returns the whitespace-delimited marker attribute.
	ClassName() string
}

// Identified is implemented by elements carrying a stable ID.
type Identified interface {
	NodeID() string
}

// IsTextArea reports whether el is an element node tagged TEXTAREA.
func IsTextArea(el Element) bool {
	if isNil(el) {
		return false
	}
	return el.NodeType() == ElementNode && strings.EqualFold(el.TagName(), TagTextArea)
}

// IDOf returns the ID of el, or "" when el has none.
func IDOf(el Element) string {
	if isNil(el) {
		return ""
	}
	if id, ok := el.(Identified); ok {
		return id.NodeID()
	}
	return ""
}

// isNil also catches typed nil pointers stored in the interface.
func isNil(el Element) bool {
	if el == nil {
		return true
	}
	v := reflect.ValueOf(el)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Node is a plain Element value.
type Node struct {
	ID    string
	Type  NodeType
	Tag   string
	Class string
}

// NewElement creates an element node with a fresh ID.
func NewElement(tag, class string) *Node {
	return &Node{
		ID:    uuid.NewString(),
		Type:  ElementNode,
		Tag:   strings.ToUpper(tag),
		Class: class,
	}
}

// NewText creates a text node. Text nodes carry no tag or class.
func NewText() *Node {
	return &Node{ID: uuid.NewString(), Type: TextNode}
}

// NodeID implements Identified.
func (n *Node) NodeID() string { return n.ID }

// NodeType implements Element.
func (n *Node) NodeType() NodeType { return n.Type }

// TagName implements Element.
func (n *Node) TagName() string { return n.Tag }

// ClassName implements Element.
func (n *Node) ClassName() string { return n.Class }
