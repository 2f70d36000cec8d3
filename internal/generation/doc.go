// Package generation orchestrates bilingual Hebrew/Arabic content generation
// against an external LLM. It defines the LLM boundary the rest of the
// application depends on, builds the formatting prompt, validates each model
// answer with the bilingual tagger and retries within a fixed budget.
package generation
