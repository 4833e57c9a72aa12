package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
)

// HTTPTransport posts JSON-RPC bodies over HTTP(S). Snode certificates are
// self-signed (the snode's Ed25519 identity is the actual trust root, per
// spec §6), so certificate validation is disabled when SkipTLSVerify is
// set; seed endpoints are plain HTTP and unaffected by it.
type HTTPTransport struct {
	client       *http.Client
	userAgent    string
	skipTLSVerify bool
}

// NewHTTPTransport returns an HTTPTransport. When skipTLSVerify is true,
// the underlying client accepts any TLS certificate, matching the snode
// storage RPC's self-signed deployment model.
func NewHTTPTransport(skipTLSVerify bool) *HTTPTransport {
	transport := &http.Transport{}
	if skipTLSVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // snode certs are self-signed; trust root is the snode's Ed25519 identity
	}

	return &HTTPTransport{
		client:        &http.Client{Timeout: DefaultTimeout, Transport: transport},
		userAgent:     "WhatsApp",
		skipTLSVerify: skipTLSVerify,
	}
}

// PostJSON implements HTTPPoster.
func (h *HTTPTransport) PostJSON(ctx context.Context, url string, body []byte) (int, []byte, error) {
	logger := logrus.WithFields(logrus.Fields{
		"function": "PostJSON",
		"package":  "transport",
		"url":      url,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, NewSessionNetError("post", url, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return 0, nil, NewSessionNetError("post", url, ErrTimeout)
		}
		logger.WithField("error", err).Warn("http post failed")
		return 0, nil, NewSessionNetError("post", url, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, NewSessionNetError("read", url, err)
	}

	return resp.StatusCode, respBody, nil
}
