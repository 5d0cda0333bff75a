package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPtr(t *testing.T) {
	p := Ptr("")
	require.NotNil(t, p)
	assert.Equal(t, "", *p)
}

func TestNonZero(t *testing.T) {
	assert.Nil(t, NonZero(""))
	assert.Nil(t, NonZero(0))

	p := NonZero("7")
	require.NotNil(t, p)
	assert.Equal(t, "7", *p)
}
