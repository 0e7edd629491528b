package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"clientlogin/internal/clientlogin"
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List the service identifiers the endpoint accepts",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range clientlogin.KnownServices() {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(servicesCmd)
}
