package domain

// Segment is a single language-tagged span of text.
type Segment struct {
	Text     string   `json:"text"`
	Language Language `json:"language"`
}

// TaggedDocument is the ordered sequence of segments extracted from one
// response. Order is reading order of the source text.
type TaggedDocument []Segment

// Count returns the number of segments in the given language.
func (d TaggedDocument) Count(lang Language) int {
	n := 0
	for _, s := range d {
		if s.Language == lang {
			n++
		}
	}
	return n
}

// Texts returns the text of every segment in the given language, in order.
func (d TaggedDocument) Texts(lang Language) []string {
	texts := make([]string, 0, len(d))
	for _, s := range d {
		if s.Language == lang {
			texts = append(texts, s.Text)
		}
	}
	return texts
}

// IsBilingual reports whether the document holds at least minPerLanguage
// segments of both Hebrew and Arabic. A minimum below one is treated as one.
func (d TaggedDocument) IsBilingual(minPerLanguage int) bool {
	if minPerLanguage < 1 {
		minPerLanguage = 1
	}
	return d.Count(Hebrew) >= minPerLanguage && d.Count(Arabic) >= minPerLanguage
}
