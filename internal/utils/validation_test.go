package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePatterns(t *testing.T) {
	assert.NoError(t, ValidatePatterns(nil))
	assert.NoError(t, ValidatePatterns([]string{"*.tmp", "build/**", "{a,b}.txt"}))

	err := ValidatePatterns([]string{"*.tmp", "[unclosed"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "[unclosed")
}
