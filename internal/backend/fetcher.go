// Package backend talks to the two APIs that own the dashboard's data.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	apperrors "multiservicios/internal/errors"
	"multiservicios/internal/fetchlog"
	"multiservicios/internal/infrastructure/logger"
)

const maxResponseSize = 10 << 20

// Recorder receives every exchange for the request/response log.
type Recorder interface {
	Record(ctx context.Context, e fetchlog.Entry)
}

// Observer receives the outcome of every exchange for metrics.
type Observer interface {
	ObserveBackend(method, outcome string, elapsed time.Duration)
}

type Request struct {
	Method string
	URL    string
	Body   any
}

// Response describes what came back. Empty is the "null" result.
type Response struct {
	Status int
	Empty  bool
}

type Fetcher struct {
	client   *http.Client
	recorder Recorder
	observer Observer
	logger   *zap.Logger
}

func NewFetcher(client *http.Client, recorder Recorder, observer Observer, logger *zap.Logger) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{
		client:   client,
		recorder: recorder,
		observer: observer,
		logger:   logger,
	}
}

// Fetch performs req and decodes a JSON answer into out. Any non-2xx status
// is a StatusError. An empty body leaves out untouched and is not an error.
func (f *Fetcher) Fetch(ctx context.Context, req Request, out any) (Response, error) {
	entry := fetchlog.Entry{
		TraceID:   logger.TraceID(ctx),
		Method:    req.Method,
		URL:       req.URL,
		CreatedAt: time.Now().UTC(),
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return Response{}, apperrors.NewInternalError("encoding request body", err)
		}
		entry.RequestBody = string(payload)
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return Response{}, apperrors.NewInternalError("building request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if entry.TraceID != "" {
		httpReq.Header.Set("X-Request-ID", entry.TraceID)
	}

	start := time.Now()
	resp, err := f.client.Do(httpReq)
	if err != nil {
		transportErr := apperrors.NewTransportError(req.Method, req.URL, err)
		f.finish(ctx, entry, start, "transport", transportErr)
		return Response{}, transportErr
	}
	defer resp.Body.Close()

	entry.Status = resp.StatusCode
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		transportErr := apperrors.NewTransportError(req.Method, req.URL, fmt.Errorf("reading body: %w", err))
		f.finish(ctx, entry, start, "transport", transportErr)
		return Response{Status: resp.StatusCode}, transportErr
	}
	if len(raw) > maxResponseSize {
		entry.ResponseBody = string(raw[:maxResponseSize])
		transportErr := apperrors.NewTransportError(req.Method, req.URL, fmt.Errorf("response body exceeds %d bytes", maxResponseSize))
		f.finish(ctx, entry, start, "transport", transportErr)
		return Response{Status: resp.StatusCode}, transportErr
	}
	entry.ResponseBody = string(raw)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := apperrors.NewStatusError(req.Method, req.URL, resp.StatusCode)
		f.finish(ctx, entry, start, "status", statusErr)
		return Response{Status: resp.StatusCode}, statusErr
	}

	result := Response{Status: resp.StatusCode}
	if len(bytes.TrimSpace(raw)) == 0 {
		result.Empty = true
		f.finish(ctx, entry, start, "ok", nil)
		return result, nil
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			decodeErr := apperrors.NewDecodeError(req.URL, string(raw), err)
			f.finish(ctx, entry, start, "decode", decodeErr)
			return result, decodeErr
		}
	}

	f.finish(ctx, entry, start, "ok", nil)
	return result, nil
}

func (f *Fetcher) finish(ctx context.Context, entry fetchlog.Entry, start time.Time, outcome string, err error) {
	elapsed := time.Since(start)
	entry.DurationMs = elapsed.Milliseconds()
	if err != nil {
		entry.Error = err.Error()
		logger.FromContext(ctx, f.logger).Warn("backend request failed",
			zap.String("method", entry.Method),
			zap.String("url", entry.URL),
			zap.Int("status", entry.Status),
			zap.Error(err),
		)
	}
	if f.observer != nil {
		f.observer.ObserveBackend(entry.Method, outcome, elapsed)
	}
	if f.recorder != nil {
		f.recorder.Record(ctx, entry)
	}
}
