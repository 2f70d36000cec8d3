// Package service contains the application use cases that sit between the
// HTTP layer and the core packages.
//
// Key components:
//
// 1. TutorService:
//   - Runs bilingual generation against a conversation session
//   - Loads the session history, passes it to the generator and stores the
//     updated history
//
// 2. DialogService:
//   - Single-shot Arabic dialog helpers (explain, translate, continue,
//     answer) and single-word analysis
//   - Never retried; transport failures surface as domain.ErrUpstreamTransport
//
// 3. SpeechService:
//   - Text-to-speech with language detection
//   - Recitation checks: transcribe uploaded audio and compare it to the
//     expected text
//
// 4. SessionStore:
//   - In-memory conversation sessions keyed by id, with a default session
//     that always exists
//
// Services receive their dependencies through constructor injection and never
// depend on concrete infrastructure such as the Gemini client.
package service
