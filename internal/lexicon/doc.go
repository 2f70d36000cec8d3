// Package lexicon asks the language model for the morphology of a single
// Arabic word and parses the answer into a domain.WordAnalysis.
//
// Answers are requested as a JSON object when the model supports structured
// output. Parsing accepts JSON with English or Hebrew keys and falls back to
// labeled "field: value" lines. Fields the model left out stay empty.
package lexicon
