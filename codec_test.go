package vectree

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalRoundTrip(t *testing.T) {
	t.Parallel()
	tr := buildExample()
	encoded, err := MarshalTree(tr, nil)
	require.NoError(t, err)
	decoded, err := UnmarshalTree[int](encoded, nil)
	require.NoError(t, err)
	require.True(t, tr.Equal(decoded))
	requireInvariant(t, decoded)
}

func TestMarshalEmpty(t *testing.T) {
	t.Parallel()
	encoded, err := MarshalTree(New[string](), nil)
	require.NoError(t, err)
	decoded, err := UnmarshalTree[string](encoded, nil)
	require.NoError(t, err)
	require.True(t, decoded.IsEmpty())
}

type payload struct {
	Name  string `json:"name" xml:"name"`
	Count int    `json:"count" xml:"count"`
}

func TestMarshalStructData(t *testing.T) {
	t.Parallel()
	tr := New[payload]()
	tr.PushRoot(payload{Name: "root", Count: 1})
	tr.PushBackChild(payload{Name: "kid", Count: 2})
	encoded, err := MarshalTree(tr, nil)
	require.NoError(t, err)
	decoded, err := UnmarshalTree[payload](encoded, nil)
	require.NoError(t, err)
	require.True(t, tr.Equal(decoded))
}

func TestMarshalCustomCodec(t *testing.T) {
	t.Parallel()
	tr := New[payload]()
	tr.PushRoot(payload{Name: "root", Count: 1})
	tr.PushBackChild(payload{Name: "kid", Count: 2})
	encoded, err := MarshalTree(tr, func(i interface{}) ([]byte, error) {
		return xml.Marshal(i)
	})
	require.NoError(t, err)
	decoded, err := UnmarshalTree[payload](encoded, func(b []byte, i interface{}) error {
		return xml.Unmarshal(b, i)
	})
	require.NoError(t, err)
	require.True(t, tr.Equal(decoded))
}

func TestUnmarshalRejectsCorruptInput(t *testing.T) {
	t.Parallel()
	tr := buildExample()
	encoded, err := MarshalTree(tr, nil)
	require.NoError(t, err)

	_, err = UnmarshalTree[int](nil, nil)
	assert.Error(t, err)

	_, err = UnmarshalTree[int](encoded[:len(encoded)-1], nil)
	assert.Error(t, err, "truncated input")

	_, err = UnmarshalTree[int](append(append([]byte{}, encoded...), 0), nil)
	assert.Error(t, err, "trailing bytes")

	// claim one more node than encoded
	tampered := append([]byte{}, encoded...)
	tampered[0]++
	_, err = UnmarshalTree[int](tampered, nil)
	assert.Error(t, err)

	// a drift that closes unopened scopes fails invariant validation
	bad, err := MarshalTree(&Tree[int]{nodes: []Node[int]{{5, 1}, {0, 2}}}, nil)
	require.NoError(t, err)
	_, err = UnmarshalTree[int](bad, nil)
	assert.Error(t, err)
}
