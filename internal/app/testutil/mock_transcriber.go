package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
)

// MockTranscriber is a testify mock of api.Transcriber
type MockTranscriber struct {
	mock.Mock
}

// NewMockTranscriber creates a mock bound to t
func NewMockTranscriber(t *testing.T) *MockTranscriber {
	m := &MockTranscriber{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Transcript implements the api.Transcriber interface
func (m *MockTranscriber) Transcript(ctx context.Context, audio []byte, filename string) (string, error) {
	args := m.Called(ctx, audio, filename)
	return args.String(0), args.Error(1)
}
