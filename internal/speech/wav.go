package speech

import (
	"bytes"
	"encoding/binary"
	"strconv"
	"strings"
)

// DefaultSampleRate is the sample rate assumed for raw PCM with no rate
// parameter.
const DefaultSampleRate = 24000

// PCMFormat describes raw little-endian PCM samples.
type PCMFormat struct {
	SampleRate    int
	Channels      int
	BitsPerSample int
}

// ParsePCMFormat reads a raw PCM MIME type such as
// "audio/L16;codec=pcm;rate=24000". It reports false for any other type.
func ParsePCMFormat(mimeType string) (PCMFormat, bool) {
	parts := strings.Split(mimeType, ";")
	base := strings.ToLower(strings.TrimSpace(parts[0]))
	if base != "audio/l16" && base != "audio/pcm" {
		return PCMFormat{}, false
	}

	format := PCMFormat{SampleRate: DefaultSampleRate, Channels: 1, BitsPerSample: 16}
	for _, p := range parts[1:] {
		key, value, ok := strings.Cut(strings.TrimSpace(p), "=")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n <= 0 {
			continue
		}
		switch strings.ToLower(key) {
		case "rate":
			format.SampleRate = n
		case "channels":
			format.Channels = n
		}
	}
	return format, true
}

// EncodeWAV wraps raw PCM samples in a RIFF/WAVE container.
func EncodeWAV(pcm []byte, f PCMFormat) []byte {
	blockAlign := f.Channels * f.BitsPerSample / 8
	byteRate := f.SampleRate * blockAlign

	var buf bytes.Buffer
	buf.Grow(44 + len(pcm))

	buf.WriteString("RIFF")
	writeUint32(&buf, uint32(36+len(pcm)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	writeUint32(&buf, 16)
	writeUint16(&buf, 1) // PCM
	writeUint16(&buf, uint16(f.Channels))
	writeUint32(&buf, uint32(f.SampleRate))
	writeUint32(&buf, uint32(byteRate))
	writeUint16(&buf, uint16(blockAlign))
	writeUint16(&buf, uint16(f.BitsPerSample))

	buf.WriteString("data")
	writeUint32(&buf, uint32(len(pcm)))
	buf.Write(pcm)

	return buf.Bytes()
}

// AsWAV returns a as a WAV clip when it holds raw PCM, and unchanged otherwise.
func AsWAV(a Audio) Audio {
	format, ok := ParsePCMFormat(a.MIMEType)
	if !ok {
		return a
	}
	return Audio{Data: EncodeWAV(a.Data, format), MIMEType: "audio/wav"}
}

func writeUint16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}
