package submit

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// httpHandler sends the payload to http://<target>/ with the verb of its
// mode and returns the response body verbatim.
type httpHandler struct {
	d    *Dispatcher
	mode Mode
}

func (h *httpHandler) Handle(ctx context.Context, target string, payload Payload) (*Result, error) {
	if strings.TrimSpace(target) == "" {
		return nil, fmt.Errorf("submit: %s: %w", h.mode, ErrTargetRequired)
	}
	method, ok := h.mode.httpMethod()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, h.mode)
	}

	body, contentType, err := encodeBody(h.d.format, payload)
	if err != nil {
		return nil, fmt.Errorf("submit: encode body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, targetURL(target), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("submit: %s %s: %w", method, target, err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := h.d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submit: %s %s: %w", method, target, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("submit: %s %s: read response: %w", method, target, err)
	}
	return &Result{Body: data}, nil
}

// targetURL builds the fixed request URL: plain HTTP against the target
// host, path pinned to / whatever the target carried.
func targetURL(target string) string {
	target = strings.TrimSpace(target)
	if !strings.Contains(target, "://") {
		target = "http://" + target
	}
	u, err := url.Parse(target)
	if err != nil {
		return strings.TrimSuffix(target, "/") + "/"
	}
	u.Path = "/"
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}

// runCodeHandler executes the target as source text through the configured
// ScriptRunner.
type runCodeHandler struct {
	d *Dispatcher
}

func (h *runCodeHandler) Handle(ctx context.Context, target string, payload Payload) (*Result, error) {
	if strings.TrimSpace(target) == "" {
		return nil, fmt.Errorf("submit: %s: %w", RunCode, ErrTargetRequired)
	}
	if h.d.runner == nil {
		return nil, ErrScriptingDisabled
	}
	value, err := h.d.runner.Run(ctx, target, payload.Values)
	if err != nil {
		return nil, fmt.Errorf("submit: run code: %w", err)
	}
	return &Result{Value: value}, nil
}

// logHandler writes the payload to the dispatcher's logger at info level.
// It needs no target and never fails.
type logHandler struct {
	d *Dispatcher
}

func (h *logHandler) Handle(ctx context.Context, _ string, payload Payload) (*Result, error) {
	attrs := make([]slog.Attr, 0, len(payload.Values))
	for _, key := range orderedKeys(payload) {
		attrs = append(attrs, slog.Any(key, payload.Values[key]))
	}
	h.d.logger.LogAttrs(ctx, slog.LevelInfo, "form submitted", attrs...)
	return &Result{}, nil
}
