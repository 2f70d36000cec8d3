package lexicon

import (
	"testing"

	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want domain.WordAnalysis
	}{
		{
			name: "hebrew keys",
			raw:  `{"משמעות": "ספר", "שורש": "ك ت ب", "בניין": "فِعَال", "יחיד": "كِتَاب", "רבים": "كُتُب"}`,
			want: domain.WordAnalysis{Meaning: "ספר", Root: "ك ت ب", Stem: "فِعَال", Singular: "كِتَاب", Plural: "كُتُب"},
		},
		{
			name: "english keys inside a code fence",
			raw:  "```json\n{\"meaning\": \"יפה\", \"root\": \"ج م ل\", \"binyan\": \"فَعِيلَة\"}\n```",
			want: domain.WordAnalysis{Meaning: "יפה", Root: "ج م ل", Stem: "فَعِيلَة"},
		},
		{
			name: "json wrapped in prose",
			raw:  "Here is the analysis: {\"plural\": [\"بُيُوت\", \"أَبْيَات\"]} hope it helps",
			want: domain.WordAnalysis{Plural: "بُيُوت, أَبْيَات"},
		},
		{
			name: "null and unknown fields are ignored",
			raw:  `{"משמעות": "בית", "שורש": null, "extra": "x"}`,
			want: domain.WordAnalysis{Meaning: "בית"},
		},
		{
			name: "labeled lines",
			raw:  "משמעות: ספר\nשורש: ك ت ب\nיחיד: كِتَاب\nרבים: كُتُب",
			want: domain.WordAnalysis{Meaning: "ספר", Root: "ك ت ب", Singular: "كِتَاب", Plural: "كُتُب"},
		},
		{
			name: "labeled lines with a missing field keep the others in place",
			raw:  "- meaning: house\n- Plural: بيوت\n",
			want: domain.WordAnalysis{Meaning: "house", Plural: "بيوت"},
		},
		{
			name: "first labeled value wins",
			raw:  "root: ب ي ت\nroot: something else",
			want: domain.WordAnalysis{Root: "ب ي ت"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{
		"",
		"just a sentence without any fields",
		`{"unrelated": "value"}`,
		"{not json at all}",
	} {
		got, err := Parse(raw)
		assert.ErrorIs(t, err, domain.ErrMalformedUpstreamShape, "raw %q", raw)
		assert.Equal(t, domain.WordAnalysis{}, got)
	}
}
