// Package domain contains the core value types of the study backend:
// languages, language-tagged segments, tagged documents, conversation
// history and word analyses. It is independent of any LLM, speech engine or
// delivery mechanism.
package domain
