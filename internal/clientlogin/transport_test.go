package clientlogin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPTransportSend(t *testing.T) {
	var gotMethod, gotContentType, gotEmail string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm returned error: %v", err)
		}
		gotEmail = r.PostFormValue("Email")

		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("Error=BadAuthentication\n"))
	}))
	defer server.Close()

	transport := NewHTTPTransport(server.Client())
	res, err := transport.Send(context.Background(), http.MethodPost, server.URL,
		map[string]string{"Content-Type": "application/x-www-form-urlencoded"},
		"accountType=HOSTED_OR_GOOGLE&Email=user%40example.com&Passwd=hunter2&service=mail&source=test")
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}

	if res.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", res.StatusCode)
	}
	if res.Body != "Error=BadAuthentication\n" {
		t.Fatalf("unexpected body %q", res.Body)
	}
	if gotMethod != http.MethodPost {
		t.Fatalf("expected POST, got %s", gotMethod)
	}
	if gotContentType != "application/x-www-form-urlencoded" {
		t.Fatalf("unexpected content type %q", gotContentType)
	}
	if gotEmail != "user@example.com" {
		t.Fatalf("expected decoded email, got %q", gotEmail)
	}
}

func TestHTTPTransportSendConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	transport := NewHTTPTransport(nil)
	if _, err := transport.Send(context.Background(), http.MethodPost, server.URL, nil, ""); err == nil {
		t.Fatalf("expected error for closed server")
	}
}

// End-to-end: descriptor through the real transport against a fake endpoint.
func TestAuthenticateAgainstHTTPServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm returned error: %v", err)
		}
		if r.PostFormValue("Passwd") != "p w+d" {
			t.Errorf("expected decoded password, got %q", r.PostFormValue("Passwd"))
		}
		if r.PostFormValue("service") != "writely" {
			t.Errorf("unexpected service %q", r.PostFormValue("service"))
		}
		if r.PostFormValue("accountType") != "HOSTED" {
			t.Errorf("unexpected account type %q", r.PostFormValue("accountType"))
		}

		_, _ = w.Write([]byte("SID=s\nLSID=l\nAuth=end-to-end-token\n"))
	}))
	defer server.Close()

	creds, err := NewCredentials(Params{
		Identity:    "user@example.com",
		Secret:      "p w+d",
		Service:     "writely",
		AccountType: AccountHosted,
	})
	if err != nil {
		t.Fatalf("NewCredentials returned error: %v", err)
	}

	authenticator := NewAuthenticatorForEndpoint(server.URL, NewHTTPTransport(server.Client()))
	outcome, err := authenticator.Authenticate(context.Background(), creds)
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if outcome.Token != "end-to-end-token" {
		t.Fatalf("expected token, got %#v", outcome)
	}
}
