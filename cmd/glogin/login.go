package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"clientlogin/internal/clientlogin"
	"clientlogin/internal/config"
)

var (
	loginEmail       string
	loginService     string
	loginAccountType string
	loginSource      string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Exchange an identity and password for a service token",
	Long: `Perform one ClientLogin exchange and print the token on stdout.

The password is read from $GLOGIN_PASSWORD, or prompted for without echo.
If the endpoint demands a CAPTCHA, the image URL is printed and a single
follow-up attempt is made with the typed answer.

Example:
  glogin login --email user@example.com --service mail`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLogin(cmd.Context())
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account identity (required)")
	loginCmd.Flags().StringVar(&loginService, "service", "", "target service identifier (required)")
	loginCmd.Flags().StringVar(&loginAccountType, "account-type", "", "GOOGLE, HOSTED or HOSTED_OR_GOOGLE")
	loginCmd.Flags().StringVar(&loginSource, "source", "", "application identifier sent to the endpoint")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("service")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(ctx context.Context) error {
	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	source := loginSource
	if source == "" {
		source = cfg.Source
	}

	password, err := readPassword()
	if err != nil {
		return err
	}

	creds, err := clientlogin.NewCredentials(clientlogin.Params{
		Identity:    loginEmail,
		Secret:      password,
		Service:     loginService,
		Source:      source,
		AccountType: clientlogin.AccountType(loginAccountType),
	})
	if err != nil {
		return err
	}

	authenticator := clientlogin.NewAuthenticatorForEndpoint(cfg.Endpoint,
		clientlogin.NewHTTPTransport(&http.Client{Timeout: cfg.Timeout}))

	outcome, err := authenticator.Authenticate(ctx, creds)
	if err != nil {
		return err
	}

	if outcome.ErrorCode == clientlogin.ErrorCaptchaRequired && outcome.Challenge != nil {
		logger.Warn("captcha challenge issued", "image", outcome.Challenge.ImageURL)
		outcome, err = answerChallenge(ctx, authenticator, password, source, outcome.Challenge)
		if err != nil {
			return err
		}
	}

	if !outcome.Succeeded() {
		return fmt.Errorf("authentication refused: %s", outcome.ErrorCode)
	}

	logger.Info("authenticated", "email", loginEmail, "service", loginService)
	fmt.Println(outcome.Token)
	return nil
}

// answerChallenge runs the single CAPTCHA continuation: show the image URL,
// collect an answer, retry once with a fresh descriptor carrying both
// challenge fields.
func answerChallenge(ctx context.Context, authenticator *clientlogin.Authenticator, password, source string, challenge *clientlogin.Challenge) (*clientlogin.Outcome, error) {
	fmt.Fprintf(os.Stderr, "Open %s and type the characters shown.\n", challenge.ImageURL)
	answer, err := readLine("CAPTCHA answer: ")
	if err != nil {
		return nil, err
	}
	if answer == "" {
		return nil, errors.New("empty captcha answer")
	}

	creds, err := clientlogin.NewCredentials(clientlogin.Params{
		Identity:          loginEmail,
		Secret:            password,
		Service:           loginService,
		Source:            source,
		AccountType:       clientlogin.AccountType(loginAccountType),
		ChallengeToken:    challenge.Token,
		ChallengeResponse: answer,
	})
	if err != nil {
		return nil, err
	}

	return authenticator.Authenticate(ctx, creds)
}

func readPassword() (string, error) {
	if password := os.Getenv("GLOGIN_PASSWORD"); password != "" {
		return password, nil
	}

	fmt.Fprint(os.Stderr, "Password: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	if len(raw) == 0 {
		return "", errors.New("empty password")
	}
	return string(raw), nil
}

func readLine(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
