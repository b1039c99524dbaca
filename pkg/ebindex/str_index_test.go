package ebindex

import (
	"testing"

	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrIndex_InsertSearchVariableLength(t *testing.T) {
	idx := NewStr(false)

	words := []string{"app", "apple", "application", "banana", "b"}
	for _, w := range words {
		_, err := idx.Insert([]byte(w), ksuid.New())
		require.NoError(t, err)
	}

	assert.Equal(t, len(words), idx.Len())

	for _, w := range words {
		e, ok := idx.Search([]byte(w))
		require.True(t, ok)
		assert.Equal(t, w, string(e.StrKey()))
	}

	_, ok := idx.Search([]byte("missing"))
	assert.False(t, ok)
}

func TestStrIndex_RejectsEmbeddedNUL(t *testing.T) {
	idx := NewStr(false)
	_, err := idx.Insert([]byte{'a', 0, 'b'}, ksuid.New())
	assert.Error(t, err)
}

func TestStrIndex_OrderedRange(t *testing.T) {
	idx := NewStr(false)
	words := []string{"pear", "apple", "mango", "banana"}
	for _, w := range words {
		_, err := idx.Insert([]byte(w), ksuid.New())
		require.NoError(t, err)
	}

	var got []string
	err := idx.Range(nil, nil, func(e *StrEntry) bool {
		got = append(got, string(e.StrKey()))
		return true
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "banana", "mango", "pear"}, got)
}

func TestStrIndex_DeleteAndDeleteKey(t *testing.T) {
	idx := NewStr(false)
	e, err := idx.Insert([]byte("one"), ksuid.New())
	require.NoError(t, err)
	_, err = idx.Insert([]byte("two"), ksuid.New())
	require.NoError(t, err)

	idx.Delete(e)
	assert.Equal(t, 1, idx.Len())
	_, ok := idx.Search([]byte("one"))
	assert.False(t, ok)

	assert.True(t, idx.DeleteKey([]byte("two")))
	assert.Equal(t, 0, idx.Len())
	assert.False(t, idx.DeleteKey([]byte("two")))
}

func TestStrIndex_UniqueOverwrite(t *testing.T) {
	idx := NewStr(true)
	first := ksuid.New()
	second := ksuid.New()

	_, err := idx.Insert([]byte("k"), first)
	require.NoError(t, err)
	_, err = idx.Insert([]byte("k"), second)
	require.NoError(t, err)

	assert.Equal(t, 1, idx.Len())
	e, ok := idx.Search([]byte("k"))
	require.True(t, ok)
	assert.Equal(t, second, e.Value)
}
