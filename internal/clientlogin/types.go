package clientlogin

import "errors"

// Error codes the endpoint reports on a 403 response.
const (
	ErrorBadAuthentication  = "BadAuthentication"
	ErrorNotVerified        = "NotVerified"
	ErrorTermsNotAgreed     = "TermsNotAgreed"
	ErrorCaptchaRequired    = "CaptchaRequired"
	ErrorAccountDeleted     = "AccountDeleted"
	ErrorAccountDisabled    = "AccountDisabled"
	ErrorServiceDisabled    = "ServiceDisabled"
	ErrorServiceUnavailable = "ServiceUnavailable"

	// ErrorUnexpectedStatus is synthesized locally when the endpoint answers
	// with a status other than 200 or 403. It never appears on the wire.
	ErrorUnexpectedStatus = "UnexpectedStatus"
)

var (
	// ErrMissingIdentity indicates construction without an account identity.
	ErrMissingIdentity = errors.New("identity required")
	// ErrMissingSecret indicates construction without a secret.
	ErrMissingSecret = errors.New("secret required")
	// ErrInvalidService indicates a service outside the known set.
	ErrInvalidService = errors.New("unknown service")
	// ErrTransport indicates the exchange never completed; no response was received.
	ErrTransport = errors.New("transport failure")
	// ErrMalformedResponse indicates a received body was missing fields the grammar requires.
	ErrMalformedResponse = errors.New("malformed response")
)

// Challenge is the CAPTCHA the endpoint issues after repeated failed
// attempts. The caller shows the image, collects an answer, and retries with
// a fresh Credentials value carrying both fields.
type Challenge struct {
	Token    string
	ImageURL string
}

// Outcome is the result of one completed exchange. A rejected credential is
// an ordinary Outcome with ErrorCode set, not an error; errors are reserved
// for exchanges that never produced a parseable response.
type Outcome struct {
	// Token is the opaque bearer token on success.
	Token string
	// SID and LSID are the session cookies a success body also carries.
	SID  string
	LSID string

	// ErrorCode is the endpoint's literal error identifier on failure.
	ErrorCode string
	// Challenge is populated only when ErrorCode is ErrorCaptchaRequired.
	Challenge *Challenge
}

// Succeeded reports whether the endpoint issued a token.
func (o *Outcome) Succeeded() bool {
	return o.ErrorCode == ""
}

// AuthorizationHeader returns the value to present in the Authorization
// header of subsequent requests to the target service.
func (o *Outcome) AuthorizationHeader() string {
	return "GoogleLogin auth=" + o.Token
}
