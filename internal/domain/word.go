package domain

// WordAnalysis is the morphological breakdown of a single Arabic word.
// Fields the model could not supply are left empty.
type WordAnalysis struct {
	Word     string `json:"word"`
	Meaning  string `json:"meaning"`
	Root     string `json:"root"`
	Stem     string `json:"stem"`
	Singular string `json:"singular"`
	Plural   string `json:"plural"`
}

// Missing returns the names of the analysis fields that are empty.
func (w WordAnalysis) Missing() []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"meaning", w.Meaning},
		{"root", w.Root},
		{"stem", w.Stem},
		{"singular", w.Singular},
		{"plural", w.Plural},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}
