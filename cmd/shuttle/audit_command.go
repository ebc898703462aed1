package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newAuditCommand(cctx *commandContext) *cobra.Command {
	var asJSON bool
	var limit int

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Show recent lifecycle operations, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cctx.withServices(func(svc *services) error {
				events, err := svc.auditLog.List(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, events)
				}
				if len(events) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No audit events")
					return nil
				}

				rows := make([][]string, 0, len(events))
				for _, event := range events {
					occurred := ""
					if !event.OccurredAt.IsZero() {
						occurred = event.OccurredAt.UTC().Format(time.RFC3339)
					}
					outcome := "ok"
					if !event.Success {
						outcome = "failed"
					}
					rows = append(rows, []string{occurred, event.Actor, event.Action, outcome, event.Detail})
				}
				rendered := renderTable(
					[]string{"When", "Actor", "Action", "Outcome", "Detail"},
					rows,
				)
				fmt.Fprintln(cmd.OutOrStdout(), rendered)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	cmd.Flags().IntVarP(&limit, "limit", "n", 50, "Maximum number of events to show")
	return cmd
}
