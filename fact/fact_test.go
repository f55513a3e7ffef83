package fact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_StringRoundTrip(t *testing.T) {
	kinds := []Kind{
		KindColl, KindMidp, KindPara, KindPerp, KindCong, KindEqAngle,
		KindEqRatio, KindCyclic, KindCircle, KindSimTri, KindConTri,
	}
	for _, k := range kinds {
		parsed, ok := ParseKind(k.String())
		require.True(t, ok, "kind %s should parse", k)
		assert.Equal(t, k, parsed)
	}

	_, ok := ParseKind("bogus")
	assert.False(t, ok)
}

func TestMidp_NormalisesEndpoints(t *testing.T) {
	assert.True(t, Midp("M", "B", "A").Eq(Midp("M", "A", "B")),
		"endpoint order should not matter")
	assert.Equal(t, []Point{"M", "A", "B"}, Midp("M", "B", "A").Points())
}

func TestFact_Eq(t *testing.T) {
	tests := map[string]struct {
		a, b     Fact
		expected bool
	}{
		"same coll": {
			a:        Coll("A", "B", "C"),
			b:        Coll("A", "B", "C"),
			expected: true,
		},
		"coll point order matters": {
			a:        Coll("A", "B", "C"),
			b:        Coll("B", "A", "C"),
			expected: false,
		},
		"different kinds": {
			a:        Para("line1", "line2"),
			b:        Perp("line1", "line2"),
			expected: false,
		},
		"cong endpoint order normalised": {
			a:        Cong(NewSegment("B", "A"), NewSegment("C", "D")),
			b:        Cong(NewSegment("A", "B"), NewSegment("D", "C")),
			expected: true,
		},
		"eqangle operand order matters": {
			a:        EqAngle("line1", "line2", "line3", "line4"),
			b:        EqAngle("line3", "line4", "line1", "line2"),
			expected: false,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Eq(tc.b))
		})
	}
}

func TestFact_String(t *testing.T) {
	tests := map[string]struct {
		fact     Fact
		expected string
	}{
		"coll": {
			fact:     Coll("A", "B", "C"),
			expected: "coll(A,B,C)",
		},
		"para": {
			fact:     Para("line1", "line2"),
			expected: "para(line1,line2)",
		},
		"cong": {
			fact:     Cong(NewSegment("B", "A"), NewSegment("C", "D")),
			expected: "cong(AB,CD)",
		},
		"simtri": {
			fact:     SimTri(NewTriangle("A", "B", "C"), NewTriangle("P", "Q", "R")),
			expected: "simtri(ABC,PQR)",
		},
		"circle": {
			fact:     OnCircle("O", "A", "B", "C"),
			expected: "circle(O,A,B,C)",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.fact.String())
		})
	}
}
