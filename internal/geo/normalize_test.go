package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		parts []orb.LineString
		want  orb.LineString
	}{
		{
			name:  "single part",
			parts: []orb.LineString{{{0, 0}, {1, 0}}},
			want:  orb.LineString{{0, 0}, {1, 0}},
		},
		{
			name:  "end to start",
			parts: []orb.LineString{{{0, 0}, {1, 0}}, {{1, 0}, {2, 0}}},
			want:  orb.LineString{{0, 0}, {1, 0}, {2, 0}},
		},
		{
			name:  "end to end reverses the second part",
			parts: []orb.LineString{{{0, 0}, {1, 0}}, {{2, 0}, {1, 0}}},
			want:  orb.LineString{{0, 0}, {1, 0}, {2, 0}},
		},
		{
			name:  "start to end prepends",
			parts: []orb.LineString{{{1, 0}, {2, 0}}, {{0, 0}, {1, 0}}},
			want:  orb.LineString{{0, 0}, {1, 0}, {2, 0}},
		},
		{
			name:  "start to start prepends reversed",
			parts: []orb.LineString{{{1, 0}, {2, 0}}, {{1, 0}, {0, 0}}},
			want:  orb.LineString{{0, 0}, {1, 0}, {2, 0}},
		},
		{
			name:  "out of order chain",
			parts: []orb.LineString{{{0, 0}, {1, 0}}, {{2, 0}, {3, 0}}, {{1, 0}, {2, 0}}},
			want:  orb.LineString{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		},
		{
			name: "disjoint keeps the longest connected part",
			parts: []orb.LineString{
				{{0, 0}, {1, 0}},
				{{5, 5}, {6, 5}},
				{{6, 5}, {8, 5}},
			},
			want: orb.LineString{{5, 5}, {6, 5}, {8, 5}},
		},
		{
			name:  "short parts are ignored",
			parts: []orb.LineString{{{9, 9}}, {{0, 0}, {1, 0}}},
			want:  orb.LineString{{0, 0}, {1, 0}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.parts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	parts := []orb.LineString{{{1, 0}, {2, 0}}, {{1, 0}, {0, 0}}}
	_, err := Normalize(parts)
	require.NoError(t, err)
	assert.Equal(t, orb.LineString{{1, 0}, {0, 0}}, parts[1])
}

func TestNormalizeDegenerate(t *testing.T) {
	_, err := Normalize(nil)
	assert.ErrorIs(t, err, ErrNoParts)

	_, err = Normalize([]orb.LineString{{{1, 1}}})
	assert.ErrorIs(t, err, ErrNoParts)

	_, err = Normalize([]orb.LineString{{{1, 1}, {1, 1}}})
	assert.ErrorIs(t, err, ErrZeroLength)
}
