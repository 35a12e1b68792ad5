package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"inventory_agent/internal/config"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"go.uber.org/zap"
)

var (
	ErrMissingEndpoint  = errors.New("blob source endpoint is required")
	ErrMissingContainer = errors.New("blob container name is required")
	ErrMissingBlobName  = errors.New("blob name is required")
)

// SourceUnavailableError reports a failed download from the blob store.
type SourceUnavailableError struct {
	Container string
	Blob      string
	Err       error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("blob source unavailable: %s/%s: %v", e.Container, e.Blob, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// Fetcher reads the configured source document in full.
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

type Client struct {
	client    *azblob.Client
	container string
	blob      string
	logger    *zap.Logger
}

// NewClient validates the source settings and connects to the blob store.
// All three settings are required; an incomplete configuration fails at
// startup rather than on the first request.
func NewClient(cfg config.Config, logger *zap.Logger) (*Client, error) {
	switch {
	case strings.TrimSpace(cfg.SourceEndpoint) == "":
		return nil, ErrMissingEndpoint
	case strings.TrimSpace(cfg.ContainerName) == "":
		return nil, ErrMissingContainer
	case strings.TrimSpace(cfg.BlobName) == "":
		return nil, ErrMissingBlobName
	}

	client, err := azblob.NewClientFromConnectionString(cfg.SourceEndpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("blob client: %w", err)
	}

	return &Client{
		client:    client,
		container: cfg.ContainerName,
		blob:      cfg.BlobName,
		logger:    logger.Named("blob"),
	}, nil
}

// Fetch downloads the configured blob in full. There is no streaming and no
// retry here; a failed fetch surfaces as SourceUnavailableError.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	resp, err := c.client.DownloadStream(ctx, c.container, c.blob, nil)
	if err != nil {
		return nil, &SourceUnavailableError{Container: c.container, Blob: c.blob, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &SourceUnavailableError{Container: c.container, Blob: c.blob, Err: err}
	}

	c.logger.Debug("blob downloaded",
		zap.String("container", c.container),
		zap.String("blob", c.blob),
		zap.Int("bytes", len(data)),
	)
	return data, nil
}
