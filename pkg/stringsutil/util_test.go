package stringsutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveEmptyStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, RemoveEmptyStrings([]string{"", "a", "", "b", ""}))
	assert.Empty(t, RemoveEmptyStrings([]string{"", ""}))
	assert.Empty(t, RemoveEmptyStrings(nil))
}
