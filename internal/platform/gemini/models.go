package gemini

import "slices"

// ShortAnswerSuffix is appended to prompts asked in short-answer mode.
const ShortAnswerSuffix = "Please provide a short, concise answer with minimal explanation."

// AvailableModels lists the text models the client may be configured with.
var AvailableModels = []string{
	"gemini-1.5-flash",
	"gemini-1.5-flash-8b",
	"gemini-1.5-pro",
	"gemini-2.0-flash",
	"gemini-2.0-flash-lite",
	"gemini-2.5-flash",
	"gemini-2.5-flash-lite",
	"gemini-2.5-pro",
}

// AvailableSpeechModels lists the models able to produce audio output.
var AvailableSpeechModels = []string{
	"gemini-2.5-flash-preview-tts",
	"gemini-2.5-pro-preview-tts",
}

// IsAvailableModel reports whether name is a known text model.
func IsAvailableModel(name string) bool {
	return slices.Contains(AvailableModels, name)
}

// IsAvailableSpeechModel reports whether name is a known speech model.
func IsAvailableSpeechModel(name string) bool {
	return slices.Contains(AvailableSpeechModels, name)
}
