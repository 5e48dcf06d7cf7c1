package ui

import "fmt"

// Inspector is a right-side panel describing the current section.
// It owns its nodes and updates their text when AppendNodes is called with visible true.
type Inspector struct {
	panel    *Node
	title    *Node
	name     *Node
	position *Node
	rotation *Node
	scale    *Node
}

// NewInspector creates an Inspector with nodes styled by the engine's CSS (.inspector, .inspector-title, etc.).
func NewInspector() *Inspector {
	return &Inspector{
		panel:    NewNode("panel", "inspector", "", ""),
		title:    NewNode("label", "inspector-title", "", "Section"),
		name:     NewNode("label", "inspector-name", "", ""),
		position: NewNode("label", "inspector-position", "", ""),
		rotation: NewNode("label", "inspector-rotation", "", ""),
		scale:    NewNode("label", "inspector-scale", "", ""),
	}
}

// Selection holds the data shown in the inspector.
// Pass this from the portfolio layer; ui does not depend on it.
type Selection struct {
	Index    int
	Count    int
	Name     string
	Position [3]float32
	Rotation [3]float32
	Scale    float32
}

// AppendNodes appends inspector nodes to dst when visible is true, after updating labels from sel.
// When visible is false, dst is returned unchanged.
func (in *Inspector) AppendNodes(dst []*Node, visible bool, sel Selection) []*Node {
	if !visible {
		return dst
	}
	in.title.Text = fmt.Sprintf("Section %d/%d", sel.Index+1, sel.Count)
	in.name.Text = "Name: " + sel.Name
	in.position.Text = fmt.Sprintf("Position: %.2f, %.2f, %.2f", sel.Position[0], sel.Position[1], sel.Position[2])
	in.rotation.Text = fmt.Sprintf("Rotation: %.2f, %.2f, %.2f", sel.Rotation[0], sel.Rotation[1], sel.Rotation[2])
	in.scale.Text = fmt.Sprintf("Scale: %.2f", sel.Scale)
	return append(dst, in.panel, in.title, in.name, in.position, in.rotation, in.scale)
}
