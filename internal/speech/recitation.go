package speech

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RecitationResult compares what the learner said with the expected text.
type RecitationResult struct {
	Expected    string   `json:"expected"`
	Recognized  string   `json:"recognized"`
	MissedWords []string `json:"missed_words"`
	Score       float64  `json:"score"`
}

// CompareRecitation aligns the recognized words with the expected words and
// reports the expected words that were not said, in their original order.
//
// Words are compared after removing commas, periods, the Arabic comma and all
// combining marks, so vowel diacritics do not count as mistakes. Score is the
// share of expected words that were matched; it is 1 for empty expected text.
func CompareRecitation(expected, recognized string) RecitationResult {
	want := strings.Fields(stripPunctuation(expected))
	got := strings.Fields(stripPunctuation(recognized))

	wantKeys := make([]string, len(want))
	for i, w := range want {
		wantKeys[i] = foldWord(w)
	}
	gotKeys := make([]string, len(got))
	for i, w := range got {
		gotKeys[i] = foldWord(w)
	}

	matched := alignWords(wantKeys, gotKeys)

	missed := make([]string, 0, len(want))
	for i, w := range want {
		if !matched[i] {
			missed = append(missed, w)
		}
	}

	score := 1.0
	if len(want) > 0 {
		score = float64(len(want)-len(missed)) / float64(len(want))
	}

	return RecitationResult{
		Expected:    expected,
		Recognized:  recognized,
		MissedWords: missed,
		Score:       score,
	}
}

// alignWords computes a longest common subsequence of want and got and
// reports which positions of want take part in it.
func alignWords(want, got []string) []bool {
	n, m := len(want), len(got)
	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			switch {
			case want[i] == got[j]:
				lcs[i][j] = lcs[i+1][j+1] + 1
			case lcs[i+1][j] >= lcs[i][j+1]:
				lcs[i][j] = lcs[i+1][j]
			default:
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	matched := make([]bool, n)
	for i, j := 0, 0; i < n && j < m; {
		switch {
		case want[i] == got[j]:
			matched[i] = true
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			i++
		default:
			j++
		}
	}
	return matched
}

var punctuation = strings.NewReplacer(",", "", ".", "", "،", "")

func stripPunctuation(s string) string {
	return punctuation.Replace(s)
}

// foldWord removes combining marks (harakat, shadda, niqqud) from w.
func foldWord(w string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, w)
	if err != nil {
		return w
	}
	return folded
}
