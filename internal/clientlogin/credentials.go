package clientlogin

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// AccountType classifies the account namespace an identity belongs to.
type AccountType string

const (
	AccountGoogle         AccountType = "GOOGLE"
	AccountHosted         AccountType = "HOSTED"
	AccountHostedOrGoogle AccountType = "HOSTED_OR_GOOGLE"
)

// DefaultSource identifies this library to the endpoint when the calling
// application does not name itself.
const DefaultSource = "go-clientlogin-1.0"

// knownServices is the closed set of service identifiers the endpoint
// accepts. Anything else is rejected at construction, before any network
// activity.
var knownServices = map[string]struct{}{
	"analytics":   {},
	"apps":        {},
	"gbase":       {},
	"jotspot":     {},
	"blogger":     {},
	"print":       {},
	"cl":          {},
	"codesearch":  {},
	"cp":          {},
	"writely":     {},
	"finance":     {},
	"mail":        {},
	"health":      {},
	"weaver":      {},
	"local":       {},
	"lh2":         {},
	"annotateweb": {},
	"wise":        {},
	"sitemaps":    {},
	"youtube":     {},
}

// KnownServices returns the service identifiers the endpoint accepts, sorted.
func KnownServices() []string {
	names := make([]string, 0, len(knownServices))
	for name := range knownServices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Params collects the named construction arguments for a Credentials value.
// Identity, Secret and Service are required; the rest are optional.
type Params struct {
	Identity    string
	Secret      string
	Service     string
	Source      string
	AccountType AccountType

	// ChallengeToken and ChallengeResponse are set only when retrying after
	// a CAPTCHA challenge. They are not cross-validated here; the endpoint
	// rejects a mismatched pair itself.
	ChallengeToken    string
	ChallengeResponse string
}

// Credentials describes a single authentication attempt. It is validated
// atomically on construction and never mutated afterwards; a CAPTCHA retry is
// expressed as a new value.
type Credentials struct {
	identity          string
	secret            string
	service           string
	source            string
	accountType       AccountType
	challengeToken    string
	challengeResponse string
}

// NewCredentials validates params and returns an immutable descriptor. It
// performs no network access.
func NewCredentials(p Params) (*Credentials, error) {
	if p.Identity == "" {
		return nil, ErrMissingIdentity
	}
	if p.Secret == "" {
		return nil, ErrMissingSecret
	}
	if _, ok := knownServices[p.Service]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidService, p.Service)
	}

	source := p.Source
	if source == "" {
		source = DefaultSource
	}

	return &Credentials{
		identity:          p.Identity,
		secret:            p.Secret,
		service:           p.Service,
		source:            source,
		accountType:       normalizeAccountType(p.AccountType),
		challengeToken:    p.ChallengeToken,
		challengeResponse: p.ChallengeResponse,
	}, nil
}

// normalizeAccountType maps anything outside the three known literals to
// AccountHostedOrGoogle. The endpoint treats an unrecognized account type the
// same as an absent one, so the descriptor does too instead of rejecting it.
func normalizeAccountType(t AccountType) AccountType {
	switch t {
	case AccountGoogle, AccountHosted, AccountHostedOrGoogle:
		return t
	default:
		return AccountHostedOrGoogle
	}
}

// Identity returns the account identity.
func (c *Credentials) Identity() string { return c.identity }

// Service returns the target service identifier.
func (c *Credentials) Service() string { return c.service }

// Source returns the calling-application identifier.
func (c *Credentials) Source() string { return c.source }

// AccountType returns the normalized account classification.
func (c *Credentials) AccountType() AccountType { return c.accountType }

// ChallengeToken returns the CAPTCHA token carried on a retry, if any.
func (c *Credentials) ChallengeToken() string { return c.challengeToken }

// formBody serializes the descriptor as an application/x-www-form-urlencoded
// body. The protocol fixes the field order, so url.Values is out: its Encode
// sorts keys.
func (c *Credentials) formBody() string {
	pairs := [][2]string{
		{"accountType", string(c.accountType)},
		{"Email", c.identity},
		{"Passwd", c.secret},
		{"service", c.service},
		{"source", c.source},
	}
	if c.challengeToken != "" {
		pairs = append(pairs, [2]string{"logintoken", c.challengeToken})
	}
	if c.challengeResponse != "" {
		pairs = append(pairs, [2]string{"logincaptcha", c.challengeResponse})
	}

	var body strings.Builder
	for i, pair := range pairs {
		if i > 0 {
			body.WriteByte('&')
		}
		body.WriteString(pair[0])
		body.WriteByte('=')
		body.WriteString(url.QueryEscape(pair[1]))
	}
	return body.String()
}
