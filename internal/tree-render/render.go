package treerender

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
)

type styles struct {
	guide     lipgloss.Style
	faint     lipgloss.Style
	dir       lipgloss.Style
	fileName  lipgloss.Style
	extension lipgloss.Style
	size      lipgloss.Style
	links     bool
}

func newStyles(r *lipgloss.Renderer, links bool) styles {
	return styles{
		guide:     r.NewStyle().Foreground(lipgloss.Color("12")).PaddingRight(1),
		faint:     r.NewStyle().Faint(true).PaddingRight(1),
		dir:       r.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
		fileName:  r.NewStyle().Foreground(lipgloss.Color("2")),
		extension: r.NewStyle().Foreground(lipgloss.Color("1")),
		size:      r.NewStyle().Foreground(lipgloss.Color("4")),
		links:     links,
	}
}

// Render draws node and its descendants with lipgloss/tree. When links is true
// labels carry OSC 8 file:// hyperlinks.
func Render(node *Node, r *lipgloss.Renderer, links bool) string {
	s := newStyles(r, links)
	root := tree.Root(IconFolder + " " + s.link(node.Path, node.Path)).
		EnumeratorStyle(s.guide)
	s.attach(root, node.Children)
	return root.String()
}

func (s styles) attach(t *tree.Tree, children []*Node) {
	for _, child := range children {
		if !child.IsDir() {
			t.Child(s.fileLabel(child))
			continue
		}

		label := s.dir
		guide := s.guide
		if child.Private {
			label = label.Faint(true)
			guide = s.faint
		}
		sub := tree.Root(IconFolder + " " + label.Render(s.link(child.Path, child.Name))).
			EnumeratorStyle(guide)
		s.attach(sub, child.Children)
		t.Child(sub)
	}
}

func (s styles) fileLabel(n *Node) string {
	name := s.fileName.Render(n.Name)
	if i := strings.Index(n.Name, "."); i >= 0 {
		name = s.fileName.Render(n.Name[:i]) + s.extension.Render(n.Name[i:])
	}

	size := s.size.Render(fmt.Sprintf("(%s)", humanize.Bytes(uint64(n.Size))))
	return n.Kind.Icon() + " " + s.link(n.Path, name) + " " + size
}

func (s styles) link(path, text string) string {
	if !s.links {
		return text
	}
	return ansi.SetHyperlink("file://"+path) + text + ansi.ResetHyperlink()
}
