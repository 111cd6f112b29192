package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/fatturapa/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the renderer over HTTP",
	Long: `Serve exposes:

  POST /api/fatturapa.xml?splitPayment=&reverseCharge=   JSON document in, XML out
  GET  /api/health`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		port := appConfig.Server.Port
		if servePort > 0 {
			port = servePort
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.New(newConverter(), port).Run(ctx)
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "listen port (default: server.port from config)")
}
