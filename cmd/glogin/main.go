package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "glogin",
	Short: "ClientLogin credential exchange tool",
	Long: `glogin exchanges an account identity and password for an opaque
service token using the legacy ClientLogin protocol, including the
CAPTCHA continuation the endpoint imposes after repeated failures.`,
	SilenceUsage: true,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
