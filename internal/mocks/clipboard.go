package mocks

import "github.com/stretchr/testify/mock"

type MockClipboard struct {
	mock.Mock
}

func NewMockClipboard() *MockClipboard {
	return &MockClipboard{}
}

func (m *MockClipboard) WriteText(text string) error {
	return m.Called(text).Error(0)
}
