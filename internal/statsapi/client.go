package statsapi

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"inventory_agent/internal/config"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const defaultTimeout = 10 * time.Second

var ErrMissingFunctionURL = errors.New("kpi function url is required")

type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("kpi api error: %s", e.Status)
	}
	return fmt.Sprintf("kpi api error: %s: %s", e.Status, e.Body)
}

// Client calls the deployed inventory_stats endpoint on behalf of the LLM
// tool.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

func NewClient(cfg config.Config, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimSpace(cfg.FunctionURL)).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout).
		SetRetryCount(1).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil
		})

	return &Client{
		http:   httpClient,
		logger: logger.Named("statsapi"),
	}
}

// GetInventoryKPIs fetches KPIs for an optional SKU key and returns the raw
// JSON body. The text goes back to the LLM verbatim as the tool result.
func (c *Client) GetInventoryKPIs(ctx context.Context, key string) (string, error) {
	if strings.TrimSpace(c.http.BaseURL) == "" {
		return "", ErrMissingFunctionURL
	}

	req := c.http.R().SetContext(ctx)
	if trimmed := strings.TrimSpace(key); trimmed != "" {
		req.SetQueryParam("key", trimmed)
	}

	resp, err := req.Get("")
	if err != nil {
		return "", fmt.Errorf("kpi request: %w", err)
	}
	if resp.IsError() {
		return "", &APIError{
			StatusCode: resp.StatusCode(),
			Status:     resp.Status(),
			Body:       strings.TrimSpace(resp.String()),
		}
	}

	c.logger.Debug("kpi response",
		zap.String("key", key),
		zap.Int("bytes", len(resp.Body())),
	)
	return resp.String(), nil
}
