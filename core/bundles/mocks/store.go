package mocks

import (
	"context"

	"wistia-clean/core/bundles"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of bundles.Store
type Store struct {
	mock.Mock
}

func (m *Store) FindLinkedBundles(ctx context.Context) ([]bundles.Bundle, error) {
	args := m.Called(ctx)
	if found, ok := args.Get(0).([]bundles.Bundle); ok {
		return found, args.Error(1)
	}
	return nil, args.Error(1)
}
