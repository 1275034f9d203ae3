package treerender

import (
	"path/filepath"
	"strings"
)

// Icons used in tree labels
const (
	IconFolder   = "📂"
	IconScript   = "🐍"
	IconImage    = "🎨"
	IconVideo    = "🎥"
	IconDocument = "📄"
)

// Kind classifies a tree entry for icon selection
type Kind int

const (
	KindDir Kind = iota
	KindScript
	KindImage
	KindVideo
	KindDocument
)

var extensionKinds = map[string]Kind{
	".py":   KindScript,
	".pyw":  KindScript,
	".sh":   KindScript,
	".png":  KindImage,
	".jpg":  KindImage,
	".jpeg": KindImage,
	".gif":  KindImage,
	".mov":  KindVideo,
	".mp4":  KindVideo,
}

// Classify picks a file kind from its extension, case-insensitively
func Classify(name string) Kind {
	if kind, ok := extensionKinds[strings.ToLower(filepath.Ext(name))]; ok {
		return kind
	}
	return KindDocument
}

// Icon returns the label icon for a kind
func (k Kind) Icon() string {
	switch k {
	case KindDir:
		return IconFolder
	case KindScript:
		return IconScript
	case KindImage:
		return IconImage
	case KindVideo:
		return IconVideo
	default:
		return IconDocument
	}
}
