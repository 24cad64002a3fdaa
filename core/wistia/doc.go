// Package wistia is a small client for the Wistia Data API (v1).
//
// It covers the four calls the cleanup needs: listing projects, listing the
// medias of one project, and deleting a project or a media by its hashed id.
// Authentication is HTTP basic auth with the user "api" and the account's API
// password.
//
// # Client Interface
//
// Callers depend on the Client interface so tests can substitute the testify
// mock in core/wistia/mocks.
//
// # Errors
//
// Non-2xx responses are mapped onto the sentinel errors in errors.go
// (ErrUnauthorized, ErrNotFound, ErrRateLimited, ErrServer) and can be tested
// with errors.Is.
//
// # Usage
//
//	client, err := wistia.NewClient(cfg.Wistia)
//	projects, err := client.ListProjects(ctx, 1, 100)
package wistia
