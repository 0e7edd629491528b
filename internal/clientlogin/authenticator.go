package clientlogin

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// Endpoint is the fixed ClientLogin URL.
const Endpoint = "https://www.google.com/accounts/ClientLogin"

// Authenticator performs single-shot credential exchanges. It keeps no state
// between calls and is safe for concurrent use; retry policy, if any, belongs
// to the caller.
type Authenticator struct {
	endpoint  string
	transport Transport
}

// NewAuthenticator builds an Authenticator against the standard endpoint.
// A nil transport selects the default net/http-backed one.
func NewAuthenticator(transport Transport) *Authenticator {
	return NewAuthenticatorForEndpoint(Endpoint, transport)
}

// NewAuthenticatorForEndpoint points the exchange at a non-default URL, for
// tests and local fakes.
func NewAuthenticatorForEndpoint(endpoint string, transport Transport) *Authenticator {
	if transport == nil {
		transport = NewHTTPTransport(nil)
	}
	return &Authenticator{endpoint: endpoint, transport: transport}
}

// Authenticate performs exactly one exchange for the given descriptor. Any
// received HTTP response yields an Outcome; the error channel is reserved for
// transport failures (ErrTransport) and bodies that violate the response
// grammar (ErrMalformedResponse).
func (a *Authenticator) Authenticate(ctx context.Context, creds *Credentials) (*Outcome, error) {
	headers := map[string]string{"Content-Type": "application/x-www-form-urlencoded"}

	res, err := a.transport.Send(ctx, http.MethodPost, a.endpoint, headers, creds.formBody())
	if err != nil {
		return nil, fmt.Errorf("clientlogin: %v: %w", err, ErrTransport)
	}

	switch res.StatusCode {
	case http.StatusOK:
		return parseSuccess(res.Body)
	case http.StatusForbidden:
		return parseFailure(res.Body)
	default:
		return &Outcome{ErrorCode: ErrorUnexpectedStatus}, nil
	}
}

// parseFields splits a newline-delimited Key=Value body into a map. Values
// may themselves contain '='; only the first one separates.
func parseFields(body string) map[string]string {
	fields := make(map[string]string)
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		fields[key] = value
	}
	return fields
}

func parseSuccess(body string) (*Outcome, error) {
	fields := parseFields(body)
	token, ok := fields["Auth"]
	if !ok || token == "" {
		return nil, fmt.Errorf("clientlogin: no Auth field in 200 body: %w", ErrMalformedResponse)
	}
	return &Outcome{Token: token, SID: fields["SID"], LSID: fields["LSID"]}, nil
}

func parseFailure(body string) (*Outcome, error) {
	fields := parseFields(body)
	code, ok := fields["Error"]
	if !ok || code == "" {
		return nil, fmt.Errorf("clientlogin: no Error field in 403 body: %w", ErrMalformedResponse)
	}

	outcome := &Outcome{ErrorCode: code}
	if code == ErrorCaptchaRequired {
		token, imageURL := fields["CaptchaToken"], fields["CaptchaUrl"]
		if token != "" || imageURL != "" {
			outcome.Challenge = &Challenge{Token: token, ImageURL: imageURL}
		}
	}
	return outcome, nil
}
