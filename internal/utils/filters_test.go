package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHidden(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{".env", true},
		{".git", true},
		{".", true},
		{"a.txt", false},
		{"__pycache__", false},
		{"file.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsHidden(tt.name))
		})
	}
}

func TestIsExcluded(t *testing.T) {
	tests := []struct {
		name     string
		relPath  string
		patterns []string
		expected bool
	}{
		{
			name:     "No patterns",
			relPath:  "a.txt",
			patterns: nil,
			expected: false,
		},
		{
			name:     "Base name wildcard at depth",
			relPath:  "sub/deep/scratch.tmp",
			patterns: []string{"*.tmp"},
			expected: true,
		},
		{
			name:     "Directory name",
			relPath:  "node_modules",
			patterns: []string{"node_modules"},
			expected: true,
		},
		{
			name:     "Double star path pattern",
			relPath:  "build/out/a.txt",
			patterns: []string{"build/**"},
			expected: true,
		},
		{
			name:     "Slash pattern does not match base name",
			relPath:  "sub/a.txt",
			patterns: []string{"other/a.txt"},
			expected: false,
		},
		{
			name:     "No match",
			relPath:  "sub/a.txt",
			patterns: []string{"*.log", "vendor"},
			expected: false,
		},
		{
			name:     "Malformed pattern never matches",
			relPath:  "a.txt",
			patterns: []string{"[a"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsExcluded(tt.relPath, tt.patterns))
		})
	}
}

func TestSkip(t *testing.T) {
	assert.True(t, Skip(".env", ".env", nil))
	assert.True(t, Skip("a.log", "sub/a.log", []string{"*.log"}))
	assert.False(t, Skip("a.txt", "sub/a.txt", []string{"*.log"}))
}
