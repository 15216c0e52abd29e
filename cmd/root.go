package cmd

import (
	"github.com/carousell/ct-go/pkg/logger/log"
	"github.com/minhng-ct/commerce-bot/internal/app"
	"github.com/minhng-ct/commerce-bot/internal/kafka"
	"github.com/minhng-ct/commerce-bot/internal/server"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "commerce-bot",
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		app.Invoke(
			server.StartServer,
			kafka.StartConsumeMessages,
		).Run()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
