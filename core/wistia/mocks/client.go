package mocks

import (
	"context"

	"wistia-clean/core/wistia"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of wistia.Client
type Client struct {
	mock.Mock
}

func (m *Client) ListProjects(ctx context.Context, page, perPage int) ([]wistia.Project, error) {
	args := m.Called(ctx, page, perPage)
	if projects, ok := args.Get(0).([]wistia.Project); ok {
		return projects, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) ListMedias(ctx context.Context, projectID int64, page, perPage int) ([]wistia.Media, error) {
	args := m.Called(ctx, projectID, page, perPage)
	if medias, ok := args.Get(0).([]wistia.Media); ok {
		return medias, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) DeleteProject(ctx context.Context, hashedID string) error {
	args := m.Called(ctx, hashedID)
	return args.Error(0)
}

func (m *Client) DeleteMedia(ctx context.Context, hashedID string) error {
	args := m.Called(ctx, hashedID)
	return args.Error(0)
}
