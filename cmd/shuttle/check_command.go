package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCommand(cctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the watched folders accept writes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cctx.withServices(func(svc *services) error {
				access := svc.files.CheckWriteAccess()
				if asJSON {
					return writeJSON(cmd, access)
				}

				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				if access.CanWrite {
					fmt.Fprintln(out, renderStatusLine("Write access", statusOK, "Both folders accept writes", colorize))
					return nil
				}
				fmt.Fprintln(out, renderStatusLine("Write access", statusError, access.Error, colorize))
				return fmt.Errorf("write access check failed: %s", access.Error)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of text")
	return cmd
}
