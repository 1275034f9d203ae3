package treerender

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"github.com/syntoxine/doubloon/internal/utils"
)

// PrivatePrefix marks directories rendered de-emphasized
const PrivatePrefix = "__"

// Node is one entry of the rendered hierarchy
type Node struct {
	Name     string
	Path     string
	Kind     Kind
	Size     int64
	Private  bool
	Children []*Node
}

// IsDir reports whether the node is a directory
func (n *Node) IsDir() bool {
	return n.Kind == KindDir
}

// Warning describes an entry left out of, or left empty in, the built tree
type Warning struct {
	Path string
	Err  error
}

func (w Warning) Error() string {
	return fmt.Sprintf("%s: %v", w.Path, w.Err)
}

func (w Warning) Unwrap() error {
	return w.Err
}

type builder struct {
	fsys     afero.Fs
	root     string
	exclude  []string
	warnings []Warning
}

// Build reads the hierarchy under root. Children are ordered directories first, then
// case-insensitively by name; hidden and excluded entries are pruned with their subtrees.
// Entries that cannot be read are left out and returned as warnings.
func Build(fsys afero.Fs, root string, exclude []string) (*Node, []Warning, error) {
	info, err := fsys.Stat(root)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", utils.ErrInvalidPath, root, err)
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s is not a directory", utils.ErrInvalidPath, root)
	}

	b := &builder{fsys: fsys, root: root, exclude: exclude}
	node := &Node{Name: root, Path: root, Kind: KindDir}

	entries, err := afero.ReadDir(fsys, root)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading %s: %w", utils.ErrFileSystem, root, err)
	}
	node.Children = b.children(root, entries)

	return node, b.warnings, nil
}

func (b *builder) children(dir string, entries []os.FileInfo) []*Node {
	nodes := make([]*Node, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		relPath, err := filepath.Rel(b.root, path)
		if err != nil {
			relPath = entry.Name()
		}
		if utils.Skip(entry.Name(), relPath, b.exclude) {
			continue
		}

		node, err := b.node(path, entry)
		if err != nil {
			b.warnings = append(b.warnings, Warning{Path: path, Err: err})
			continue
		}
		nodes = append(nodes, node)
	}

	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].IsDir() != nodes[j].IsDir() {
			return nodes[i].IsDir()
		}
		return strings.ToLower(nodes[i].Name) < strings.ToLower(nodes[j].Name)
	})

	return nodes
}

func (b *builder) node(path string, entry os.FileInfo) (*Node, error) {
	info := entry
	linked := entry.Mode()&os.ModeSymlink != 0
	if linked {
		target, err := b.fsys.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("resolving symlink: %w", err)
		}
		info = target
	}

	if !info.IsDir() {
		return &Node{
			Name: entry.Name(),
			Path: path,
			Kind: Classify(entry.Name()),
			Size: info.Size(),
		}, nil
	}

	node := &Node{
		Name:    entry.Name(),
		Path:    path,
		Kind:    KindDir,
		Private: strings.HasPrefix(entry.Name(), PrivatePrefix),
	}
	// linked directories are shown but never entered
	if linked {
		return node, nil
	}

	entries, err := afero.ReadDir(b.fsys, path)
	if err != nil {
		b.warnings = append(b.warnings, Warning{Path: path, Err: err})
		return node, nil
	}
	node.Children = b.children(path, entries)
	return node, nil
}
