// Package bilingual implements the Hebrew/Arabic tagging protocol used to
// exchange study content with the language model.
//
// Tagged text is plain text holding zero or more <he>...</he> and <ar>...</ar>
// spans in any order. Extract turns such text into an ordered
// domain.TaggedDocument; AutoTag retrofits tags onto untagged text that mixes
// both scripts. Every function in this package is pure and safe for
// concurrent use.
package bilingual
