package mocks

import (
	"github.com/stretchr/testify/mock"
)

type MockDocumentExtractor struct {
	mock.Mock
}

func (m *MockDocumentExtractor) Extract(content []byte, filename string) (string, error) {
	args := m.Called(content, filename)

	return args.String(0), args.Error(1)
}
