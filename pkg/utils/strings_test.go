package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitList(" a , ,b,", ","))
	assert.Nil(t, SplitList("", ","))
}

func TestRemoveEmptyStrings(t *testing.T) {
	assert.Equal(t, []string{"x"}, RemoveEmptyStrings([]string{"", "x", ""}))
	assert.Nil(t, RemoveEmptyStrings(nil))
}
