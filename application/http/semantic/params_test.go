package semantic

import (
	"testing"

	"http-fixture/application/util/form"

	"github.com/stretchr/testify/assert"
)

func TestParamsZeroValue(t *testing.T) {
	var p Params
	assert.Equal(t, 0, p.Len())
	assert.False(t, p.Has("a"))
	assert.Empty(t, p.Pairs())

	_, ok := p.Get("a")
	assert.False(t, ok)
}

func TestParamsFrom(t *testing.T) {
	testcases := []struct {
		desc     string
		input    []form.Pair
		expected []form.Pair
	}{
		{
			desc:     "insertion order",
			input:    []form.Pair{{Key: "b", Value: "2"}, {Key: "a", Value: "1"}, {Key: "c", Value: "3"}},
			expected: []form.Pair{{Key: "b", Value: "2"}, {Key: "a", Value: "1"}, {Key: "c", Value: "3"}},
		},
		{
			desc:     "duplicate keeps first position and last value",
			input:    []form.Pair{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}, {Key: "a", Value: "3"}},
			expected: []form.Pair{{Key: "a", Value: "3"}, {Key: "b", Value: "2"}},
		},
		{
			desc:     "empty",
			input:    nil,
			expected: []form.Pair{},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			p := ParamsFrom(tc.input)
			assert.Equal(t, tc.expected, p.Pairs())
			assert.Equal(t, len(tc.expected), p.Len())
		})
	}
}

func TestParamsSetDefault(t *testing.T) {
	var p Params
	p.SetDefault("session", "first")
	p.SetDefault("session", "second")

	v, ok := p.Get("session")
	assert.True(t, ok)
	assert.Equal(t, "first", v)
}

func TestParamsKeysIsCopy(t *testing.T) {
	p := ParamsFrom([]form.Pair{{Key: "a", Value: "1"}})
	keys := p.Keys()
	keys[0] = "z"

	assert.Equal(t, []string{"a"}, p.Keys())
}

func TestParamsMerge(t *testing.T) {
	query := ParamsFrom([]form.Pair{{Key: "a", Value: "1"}, {Key: "D", Value: ""}, {Key: "b", Value: "2"}})
	body := ParamsFrom([]form.Pair{{Key: "b", Value: "posted"}, {Key: "c", Value: "3"}})

	merged := query.Merge(body)
	assert.Equal(t, []form.Pair{{Key: "a", Value: "1"}, {Key: "D", Value: ""}, {Key: "b", Value: "posted"}, {Key: "c", Value: "3"}}, merged.Pairs())

	// Sources are untouched.
	v, _ := query.Get("b")
	assert.Equal(t, "2", v)
	assert.Equal(t, 2, body.Len())
}

func TestParamsReadOnlyOnValue(t *testing.T) {
	pairs := []form.Pair{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}

	assert.Equal(t, pairs, ParamsFrom(pairs).Pairs())
	assert.Equal(t, []string{"a", "b"}, ParamsFrom(pairs).Keys())
	assert.Equal(t, 2, ParamsFrom(pairs).Len())
	assert.True(t, ParamsFrom(pairs).Has("b"))

	request := Request{Query: ParamsFrom(pairs[:1]), Form: ParamsFrom(pairs[1:])}
	assert.Equal(t, pairs, request.Params().Pairs())
}
