package testutil

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// WAVBytes returns a mono 16-bit PCM WAV of the given number of silent samples
func WAVBytes(sampleRate uint32, samples int) []byte {
	const (
		channels      = 1
		bitsPerSample = 16
	)
	blockAlign := uint16(channels * bitsPerSample / 8)
	dataSize := uint32(samples) * uint32(blockAlign)

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, sampleRate)
	binary.Write(&buf, binary.LittleEndian, sampleRate*uint32(blockAlign))
	binary.Write(&buf, binary.LittleEndian, blockAlign)
	binary.Write(&buf, binary.LittleEndian, uint16(bitsPerSample))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, dataSize)
	buf.Write(make([]byte, dataSize))
	return buf.Bytes()
}

// CreateTestAudioFile writes a short silent WAV file into a temp directory
func CreateTestAudioFile(t *testing.T, filename string) string {
	t.Helper()

	fullPath := filepath.Join(t.TempDir(), filepath.Base(filename))
	if err := os.WriteFile(fullPath, WAVBytes(16000, 1024), 0644); err != nil {
		t.Fatalf("Failed to create test audio file: %v", err)
	}
	return fullPath
}
