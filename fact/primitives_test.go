package fact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSegment_Canonical(t *testing.T) {
	tests := map[string]struct {
		a, b     Point
		expected string
	}{
		"already sorted": {
			a:        "A",
			b:        "B",
			expected: "AB",
		},
		"reversed": {
			a:        "B",
			b:        "A",
			expected: "AB",
		},
		"longer names": {
			a:        "M1",
			b:        "C",
			expected: "CM1",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			s := NewSegment(tc.a, tc.b)
			assert.Equal(t, tc.expected, s.String())
			assert.Equal(t, NewSegment(tc.b, tc.a), s, "endpoint order should not matter")
		})
	}
}

func TestSegment_Other(t *testing.T) {
	s := NewSegment("A", "B")

	other, ok := s.Other("A")
	require.True(t, ok)
	assert.Equal(t, Point("B"), other)

	other, ok = s.Other("B")
	require.True(t, ok)
	assert.Equal(t, Point("A"), other)

	_, ok = s.Other("C")
	assert.False(t, ok)
}

func TestAngle_Rewrite(t *testing.T) {
	tests := map[string]struct {
		angle    Angle
		expected Angle
	}{
		"first key": {
			angle:    NewAngle("line2", "line3"),
			expected: NewAngle("line1", "line3"),
		},
		"second key": {
			angle:    NewAngle("line3", "line2"),
			expected: NewAngle("line3", "line1"),
		},
		"both keys": {
			angle:    NewAngle("line2", "line2"),
			expected: NewAngle("line1", "line1"),
		},
		"neither key": {
			angle:    NewAngle("line4", "line5"),
			expected: NewAngle("line4", "line5"),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.angle.Rewrite("line2", "line1"))
		})
	}
}

func TestTriangle_Permute(t *testing.T) {
	tri := NewTriangle("A", "B", "C")

	assert.Equal(t, tri, tri.Permute(IdentityPerm))
	assert.Equal(t, NewTriangle("B", "A", "C"), tri.Permute(Perm3{1, 0, 2}))
	assert.Equal(t, NewTriangle("C", "A", "B"), tri.Permute(Perm3{2, 0, 1}))
}

func TestAlignPerm(t *testing.T) {
	tests := map[string]struct {
		from, to Triangle
		ok       bool
	}{
		"identity": {
			from: NewTriangle("A", "B", "C"),
			to:   NewTriangle("A", "B", "C"),
			ok:   true,
		},
		"swap first two": {
			from: NewTriangle("Q", "P", "R"),
			to:   NewTriangle("P", "Q", "R"),
			ok:   true,
		},
		"rotation": {
			from: NewTriangle("C", "A", "B"),
			to:   NewTriangle("A", "B", "C"),
			ok:   true,
		},
		"different vertex set": {
			from: NewTriangle("A", "B", "C"),
			to:   NewTriangle("A", "B", "D"),
			ok:   false,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			sigma, ok := AlignPerm(tc.from, tc.to)
			require.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.ok, tc.from.SameVertices(tc.to))
			if ok {
				assert.Equal(t, tc.to, tc.from.Permute(sigma))
			}
		})
	}
}

func TestPerm3_InverseCompose(t *testing.T) {
	tri := NewTriangle("A", "B", "C")
	for _, sigma := range S3 {
		assert.Equal(t, tri, tri.Permute(sigma).Permute(sigma.Inverse()),
			"inverse should undo %v", sigma)
		for _, tau := range S3 {
			assert.Equal(t, tri.Permute(sigma).Permute(tau), tri.Permute(sigma.Compose(tau)),
				"compose should match sequential application of %v then %v", sigma, tau)
		}
	}
}

func TestCircle_Contains(t *testing.T) {
	c := NewCircle("O1", "C", "A", "B")

	assert.Equal(t, Point("O1"), c.Centre())
	assert.Equal(t, []Point{"A", "B", "C"}, c.Points(), "points should be sorted")
	assert.True(t, c.Contains("B"))
	assert.False(t, c.Contains("O1"), "the centre is not an on-circle point")
	assert.False(t, c.Contains("D"))
}
