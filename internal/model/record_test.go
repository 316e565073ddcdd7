package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordGet(t *testing.T) {
	r := NewRecord("Date", "2024-01-05", "To", "")

	v, ok := r.Get("Date")
	assert.True(t, ok)
	assert.Equal(t, "2024-01-05", v)

	v, ok = r.Get("To")
	assert.True(t, ok, "empty value is still present")
	assert.Empty(t, v)

	_, ok = r.Get("Miles")
	assert.False(t, ok)
	assert.Empty(t, r.Value("Miles"))
}

func TestRecordSetKeepsFirstPosition(t *testing.T) {
	var r Record
	r.Set("a", "1")
	r.Set("b", "2")
	r.Set("a", "3")

	assert.Equal(t, []string{"a", "b"}, r.Columns)
	assert.Equal(t, "3", r.Value("a"))
	assert.Equal(t, 2, r.Len())
}

func TestNewRecordOddPanics(t *testing.T) {
	assert.Panics(t, func() { NewRecord("a") })
}
