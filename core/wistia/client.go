package wistia

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client defines the Wistia operations used by the cleanup.
type Client interface {
	// ListProjects returns one page of projects. Pages start at 1.
	ListProjects(ctx context.Context, page, perPage int) ([]Project, error)
	// ListMedias returns one page of the medias belonging to a project.
	ListMedias(ctx context.Context, projectID int64, page, perPage int) ([]Media, error)
	// DeleteProject deletes a project and everything in it.
	DeleteProject(ctx context.Context, hashedID string) error
	// DeleteMedia deletes a single media.
	DeleteMedia(ctx context.Context, hashedID string) error
}

// NewClient creates a resty backed Client from the configuration.
func NewClient(cfg Config) (Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("failed to create wistia client: empty base url")
	}
	if !strings.Contains(baseURL, "://") {
		baseURL = "https://" + baseURL
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	rc := resty.New().
		SetTransport(transport).
		SetBaseURL(baseURL).
		SetTimeout(timeoutDuration).
		SetBasicAuth("api", cfg.APIPassword).
		SetHeader("Accept", "application/json")

	return &restClient{client: rc}, nil
}

type restClient struct {
	client *resty.Client
}

func (c *restClient) ListProjects(ctx context.Context, page, perPage int) ([]Project, error) {
	var projects []Project

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		SetQueryParam("per_page", strconv.Itoa(perPage)).
		SetResult(&projects).
		Get("/projects.json")
	if err != nil {
		return nil, fmt.Errorf("list projects request: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return projects, nil
}

func (c *restClient) ListMedias(ctx context.Context, projectID int64, page, perPage int) ([]Media, error) {
	var medias []Media

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("project_id", strconv.FormatInt(projectID, 10)).
		SetQueryParam("page", strconv.Itoa(page)).
		SetQueryParam("per_page", strconv.Itoa(perPage)).
		SetResult(&medias).
		Get("/medias.json")
	if err != nil {
		return nil, fmt.Errorf("list medias request: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("list medias of project %d: %w", projectID, err)
	}

	return medias, nil
}

func (c *restClient) DeleteProject(ctx context.Context, hashedID string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("hashedID", hashedID).
		Delete("/projects/{hashedID}.json")
	if err != nil {
		return fmt.Errorf("delete project request: %w", err)
	}
	return mapHTTPError(resp)
}

func (c *restClient) DeleteMedia(ctx context.Context, hashedID string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("hashedID", hashedID).
		Delete("/medias/{hashedID}.json")
	if err != nil {
		return fmt.Errorf("delete media request: %w", err)
	}
	return mapHTTPError(resp)
}
