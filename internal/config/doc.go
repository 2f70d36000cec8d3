// Package config handles configuration loading, parsing, and validation
// from environment variables, an optional .env file and an optional
// config.yaml. Environment variables use the LINGO_ prefix, with nested keys
// joined by underscores (LINGO_SERVER_PORT, LINGO_LLM_MODEL_NAME).
package config
