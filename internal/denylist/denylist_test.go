package denylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockedExactMatch(t *testing.T) {
	list := New([]string{"596161717", "551400977"})

	assert.True(t, list.Blocked("596161717"))
	assert.True(t, list.Blocked("551400977"))
	assert.False(t, list.Blocked("123456789"))
}

func TestBlockedRequiresExactForm(t *testing.T) {
	list := New([]string{"596161717"})

	assert.False(t, list.Blocked("59616171"))
	assert.False(t, list.Blocked(" 596161717"))
	assert.False(t, list.Blocked(""))
}

func TestBlockedPhone(t *testing.T) {
	list := New([]string{"596161717"})

	assert.True(t, list.BlockedPhone(596161717))
	assert.False(t, list.BlockedPhone(123))
}

func TestEmptyList(t *testing.T) {
	list := New(nil)

	assert.Equal(t, 0, list.Len())
	assert.False(t, list.Blocked("596161717"))
}
