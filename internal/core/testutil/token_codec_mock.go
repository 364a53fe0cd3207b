package testutil

import (
	"github.com/evfreq/evfreq/internal/core/ports"
)

// MockTokenCodec is a mock implementation of the ports.TokenCodec interface.
type MockTokenCodec struct {
	EncodeFunc func(token string) int32
	DecodeFunc func(id int32) (string, bool)
	SizeFunc   func() int
}

// Encode mocks the Encode method.
func (m *MockTokenCodec) Encode(token string) int32 {
	if m.EncodeFunc != nil {
		return m.EncodeFunc(token)
	}
	// Default behavior: everything maps to identifier 0.
	return 0
}

// Decode mocks the Decode method.
func (m *MockTokenCodec) Decode(id int32) (string, bool) {
	if m.DecodeFunc != nil {
		return m.DecodeFunc(id)
	}
	// Default behavior: unknown identifier.
	return "", false
}

// Size mocks the Size method.
func (m *MockTokenCodec) Size() int {
	if m.SizeFunc != nil {
		return m.SizeFunc()
	}
	return 0
}

// Ensure MockTokenCodec implements the ports.TokenCodec interface.
var _ ports.TokenCodec = (*MockTokenCodec)(nil)
