// internal/upstream/client.go

// Package upstream implements the client for the external echo service: it
// POSTs a payload as JSON and extracts the re-parsed payload from the
// response envelope.
package upstream

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"strings"

	"stepchain/internal/common/errors"
	internalhttp "stepchain/internal/common/http"
	"stepchain/internal/common/logger"
	"stepchain/internal/common/metrics"
	"stepchain/internal/models"
)

type Client struct {
	config *Config
	http   *internalhttp.Client
	logger logger.Logger
}

func NewClient(config *Config, httpClient *internalhttp.Client, log logger.Logger) *Client {
	return &Client{
		config: config,
		http:   httpClient,
		logger: log.WithFields(map[string]interface{}{"upstream": config.URL}),
	}
}

// PostAndEcho sends the payload to the echo service and returns the payload
// the service parsed back out of it. A malformed response body is terminal
// unless RetryMalformed is set, in which case the call is re-issued once.
func (c *Client) PostAndEcho(ctx context.Context, p models.Payload) (models.Payload, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return models.Payload{}, errors.NewEncodeError(err)
	}

	out, err := c.call(ctx, body)
	if err != nil && c.config.RetryMalformed && isDecodeFailure(err) {
		c.logger.Warn("echo response malformed, re-issuing once", map[string]interface{}{
			"error": err.Error(),
		})
		return c.call(ctx, body)
	}
	return out, err
}

func (c *Client) call(ctx context.Context, body []byte) (models.Payload, error) {
	resp, err := c.http.PostJSON(ctx, c.config.URL, body)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded ||
			strings.Contains(err.Error(), "Client.Timeout") ||
			strings.Contains(err.Error(), "deadline") {
			metrics.UpstreamCallsTotal.WithLabelValues("timeout").Inc()
			return models.Payload{}, errors.NewUpstreamTimeoutError(err)
		}
		metrics.UpstreamCallsTotal.WithLabelValues("unreachable").Inc()
		return models.Payload{}, errors.NewUpstreamUnreachableError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.UpstreamCallsTotal.WithLabelValues("bad_status").Inc()
		return models.Payload{}, errors.NewUpstreamBadStatusError(resp.StatusCode)
	}

	// The response arrives chunked; buffer the whole body before decoding.
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamCallsTotal.WithLabelValues("unreachable").Inc()
		return models.Payload{}, errors.NewUpstreamUnreachableError(err)
	}

	var envelope models.EchoEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		metrics.UpstreamCallsTotal.WithLabelValues("decode_failed").Inc()
		return models.Payload{}, errors.NewUpstreamDecodeError(err)
	}

	metrics.UpstreamCallsTotal.WithLabelValues("ok").Inc()
	return envelope.JSON, nil
}

func isDecodeFailure(err error) bool {
	var stdErr *errors.StandardError
	return stderrors.As(err, &stdErr) && stdErr.Code == errors.ErrCodeUpstreamDecodeFailed
}
