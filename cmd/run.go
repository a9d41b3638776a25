package cmd

import (
	"github.com/spf13/cobra"

	"github.com/byond/leadquiz/internal/app"
)

// runApp launches the TUI. quiz opens the potential check straight away.
func runApp(cmd *cobra.Command, c *cli, quiz bool) error {
	return app.Run(cmd.Context(), c.env(), app.Options{Quiz: quiz})
}
