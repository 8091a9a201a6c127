package axl

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// RequestIDHeader carries the correlation id of a call.
const RequestIDHeader = "X-Request-ID"

// recorder is the round tripper behind a single call. It keeps the raw
// envelopes for History, stamps the request id and binds the request to the
// call's context.
type recorder struct {
	ctx       context.Context
	requestID string
	next      http.RoundTripper
	logger    *zap.Logger

	history History
	status  int
}

func (r *recorder) RoundTrip(req *http.Request) (*http.Response, error) {
	sent, err := drain(req.Body)
	if err != nil {
		return nil, fmt.Errorf("read request: %w", err)
	}
	r.history = History{LastSent: sent}

	out := req.Clone(r.ctx)
	out.Body = io.NopCloser(bytes.NewReader(sent))
	out.ContentLength = int64(len(sent))
	out.Header.Set(RequestIDHeader, r.requestID)
	r.logger.Debug("sending request", zap.String("url", out.URL.String()), zap.ByteString("request", sent))

	res, err := r.next.RoundTrip(out)
	if err != nil {
		return nil, err
	}
	received, err := drain(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	res.Body = io.NopCloser(bytes.NewReader(received))
	r.history.LastReceived = received
	r.status = res.StatusCode
	r.logger.Debug("received response", zap.Int("status", res.StatusCode), zap.ByteString("response", received))
	return res, nil
}

func drain(body io.ReadCloser) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	defer body.Close()
	return io.ReadAll(body)
}
