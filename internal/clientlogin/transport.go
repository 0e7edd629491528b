package clientlogin

import (
	"context"
	"io"
	"net/http"
	"strings"
)

// Response is the raw result of one HTTP exchange, as handed to the parser.
type Response struct {
	StatusCode int
	Body       string
}

// Transport performs the HTTP exchange on behalf of the Authenticator.
// Implementations own connection handling, TLS, redirects and timeouts.
type Transport interface {
	Send(ctx context.Context, method, url string, headers map[string]string, body string) (*Response, error)
}

// HTTPTransport is the net/http-backed Transport used outside tests.
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport wraps the given client; nil selects http.DefaultClient.
func NewHTTPTransport(client *http.Client) *HTTPTransport {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPTransport{client: client}
}

// Send implements Transport.
func (t *HTTPTransport) Send(ctx context.Context, method, url string, headers map[string]string, body string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, strings.NewReader(body))
	if err != nil {
		return nil, err
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	res, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	return &Response{StatusCode: res.StatusCode, Body: string(payload)}, nil
}
