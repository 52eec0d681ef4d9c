package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleHashMap_SortedEnumeration(t *testing.T) {
	m := NewSimpleHashMap()
	m.Set("c", 3).Set("a", 1).Set("b", 2)

	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())
	assert.Equal(t, []any{1, 2, 3}, m.Values())
	assert.Equal(t, []Entry{{"a", 1}, {"b", 2}, {"c", 3}}, m.Entries())
}

func TestSimpleHashMap_Contract(t *testing.T) {
	m := NewSimpleHashMap()
	m.Set("a", 1).Set("a", 2).Set("n", nil)

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 2, m.Get("a"))
	assert.False(t, m.Has("n"))
	assert.False(t, m.Remove("missing"))
	assert.True(t, m.Remove("a"))

	m.Clear()
	assert.Equal(t, 0, m.Len())
	m.Set("z", true)
	assert.True(t, m.Has("z"))
}
