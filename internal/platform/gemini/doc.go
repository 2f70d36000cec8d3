// Package gemini adapts Google's Gemini API to the application's LLM and
// speech boundaries.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the application's core to Google's external Gemini service
// without exposing the details of the service to the rest of the code.
//
// Key components:
//
// 1. Client:
//   - Implements generation.LLM and generation.StructuredLLM
//   - Sends free-text prompts, optionally asking for a short answer
//   - Requests JSON answers constrained by a response schema
//
// 2. Speaker:
//   - Implements speech.Synthesizer using Gemini's audio output modality
//   - Picks a prebuilt voice per language and returns WAV audio
//
// 3. Transcriber:
//   - Implements speech.Transcriber by sending inline audio to a Gemini model
//
// 4. Error Handling:
//   - Wraps transport and API failures with domain.ErrUpstreamTransport
//   - Maps safety blocks to generation.ErrContentBlocked
//   - Maps empty or unusable answers to generation.ErrInvalidResponse
//
// All three components share one genai.Client created by Connect, which
// supports both the Gemini API (API key) and Vertex AI (service account or
// application default credentials) backends.
package gemini
