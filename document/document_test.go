// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Literate Tools Authors

package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueKinds(t *testing.T) {
	assert.Equal(t, KindScalar, Scalar("make").Kind())
	assert.Equal(t, KindSequence, Sequence(Scalar("a")).Kind())
	assert.Equal(t, KindMapping, Mapping(Entry{Key: "a", Value: Scalar("b")}).Kind())
	assert.Equal(t, KindInvalid, Value{}.Kind())

	assert.True(t, Value{}.IsZero())
	assert.False(t, Scalar("").IsZero())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "scalar", KindScalar.String())
	assert.Equal(t, "sequence", KindSequence.String())
	assert.Equal(t, "mapping", KindMapping.String())
	assert.Equal(t, "invalid", KindInvalid.String())
}

func TestAccessors(t *testing.T) {
	assert.Equal(t, "make", Scalar("make").Text())
	assert.Empty(t, Sequence().Text())

	seq := Sequence(Scalar("a"), Scalar("b"))
	require.Len(t, seq.Items(), 2)
	assert.Equal(t, "a", seq.Items()[0].Text())

	m := Mapping(
		Entry{Key: "build", Value: Scalar("make")},
		Entry{Key: "deploy", Value: Scalar("ship")},
	)
	require.Len(t, m.Entries(), 2)
	assert.Equal(t, "build", m.Entries()[0].Key)

	v, ok := m.Lookup("deploy")
	assert.True(t, ok)
	assert.Equal(t, "ship", v.Text())

	_, ok = m.Lookup("missing")
	assert.False(t, ok)

	_, ok = Scalar("not a map").Lookup("key")
	assert.False(t, ok)
}

func TestWithEntry(t *testing.T) {
	m := Mapping(Entry{Key: "build", Value: Scalar("make")})

	appended := m.WithEntry("install", Scalar("bundle install"))
	require.Len(t, appended.Entries(), 2)
	assert.Equal(t, "install", appended.Entries()[1].Key)
	// the original is untouched
	require.Len(t, m.Entries(), 1)

	replaced := m.WithEntry("build", Scalar("rake"))
	require.Len(t, replaced.Entries(), 1)
	v, ok := replaced.Lookup("build")
	assert.True(t, ok)
	assert.Equal(t, "rake", v.Text())

	scalar := Scalar("x")
	assert.True(t, scalar.Equal(scalar.WithEntry("a", Scalar("b"))))
}

func TestEqual(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     Value
		expected bool
	}{
		{"zero values", Value{}, Value{}, true},
		{"same scalar", Scalar("a"), Scalar("a"), true},
		{"different scalar", Scalar("a"), Scalar("b"), false},
		{"kind mismatch", Scalar("a"), Sequence(Scalar("a")), false},
		{"same sequence", Sequence(Scalar("a"), Value{}), Sequence(Scalar("a"), Value{}), true},
		{"sequence order matters", Sequence(Scalar("a"), Scalar("b")), Sequence(Scalar("b"), Scalar("a")), false},
		{
			"same mapping",
			Mapping(Entry{Key: "a", Value: Scalar("1")}),
			Mapping(Entry{Key: "a", Value: Scalar("1")}),
			true,
		},
		{
			"mapping entry order matters",
			Mapping(Entry{Key: "a", Value: Scalar("1")}, Entry{Key: "b", Value: Scalar("2")}),
			Mapping(Entry{Key: "b", Value: Scalar("2")}, Entry{Key: "a", Value: Scalar("1")}),
			false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Equal(tc.b))
			assert.Equal(t, tc.expected, tc.b.Equal(tc.a))
		})
	}
}
