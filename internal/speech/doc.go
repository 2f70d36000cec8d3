// Package speech defines the text-to-speech and speech-to-text boundaries and
// the recitation check that compares a learner's spoken Arabic with the text
// they were asked to read.
package speech
