package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"shuttle/internal/status"
)

func newStatusCommand(cctx *commandContext) *cobra.Command {
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Inspect and manage tracked file statuses",
	}

	statusCmd.AddCommand(newStatusListCommand(cctx))
	statusCmd.AddCommand(newStatusSummaryCommand(cctx))
	statusCmd.AddCommand(newStatusClearCommand(cctx))
	statusCmd.AddCommand(newStatusExportCommand(cctx))
	statusCmd.AddCommand(newStatusImportCommand(cctx))

	return statusCmd
}

func newStatusListCommand(cctx *commandContext) *cobra.Command {
	var asJSON bool
	var filterStatus string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tracked files, most recently updated first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cctx.withServices(func(svc *services) error {
				files, err := svc.files.ListFileStatuses(cmd.Context())
				if err != nil {
					return err
				}
				if filter := strings.TrimSpace(filterStatus); filter != "" {
					parsed, ok := status.ParseStatus(filter)
					if !ok {
						return fmt.Errorf("unknown status %q", filter)
					}
					filtered := files[:0]
					for _, file := range files {
						if file.Status == string(parsed) {
							filtered = append(filtered, file)
						}
					}
					files = filtered
				}
				if asJSON {
					return writeJSON(cmd, files)
				}
				if len(files) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No tracked files")
					return nil
				}
				rendered := renderTable(
					[]string{"Name", "Status", "Source", "Updated", "Remarks"},
					buildStatusRows(files),
				)
				fmt.Fprintln(cmd.OutOrStdout(), rendered)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	cmd.Flags().StringVar(&filterStatus, "status", "", "Only show files with this status")
	return cmd
}

func newStatusSummaryCommand(cctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show per-status counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cctx.withServices(func(svc *services) error {
				stats, err := svc.files.FileStatusStats(cmd.Context())
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, stats)
				}
				rows := make([][]string, 0, len(stats))
				for _, known := range status.Statuses() {
					rows = append(rows, []string{displayStatus(string(known)), fmt.Sprintf("%d", stats[string(known)])})
				}
				rendered := renderTable([]string{"Status", "Count"}, rows, alignLeft, alignRight)
				fmt.Fprintln(cmd.OutOrStdout(), rendered)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newStatusClearCommand(cctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every status record (files are not touched)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cctx.withServices(func(svc *services) error {
				result := svc.files.ClearAllFileStatuses(cmd.Context(), cctx.actor())
				if asJSON {
					return writeJSON(cmd, result)
				}
				if !result.Success {
					return fmt.Errorf("clear statuses: %s", result.Error)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d status records\n", result.Removed)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of text")
	return cmd
}

func newStatusExportCommand(cctx *commandContext) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export status records as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cctx.withServices(func(svc *services) error {
				out := cmd.OutOrStdout()
				if target := strings.TrimSpace(outputPath); target != "" {
					file, err := os.Create(target)
					if err != nil {
						return fmt.Errorf("create export file: %w", err)
					}
					defer file.Close()
					out = file
				}
				return svc.files.BulkExport(cmd.Context(), out)
			})
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write CSV to this file instead of stdout")
	return cmd
}

func newStatusImportCommand(cctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "import <csv-file>",
		Short: "Import status records from a CSV export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cctx.withServices(func(svc *services) error {
				file, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open import file: %w", err)
				}
				defer file.Close()

				result := svc.files.BulkImport(cmd.Context(), file)
				if asJSON {
					return writeJSON(cmd, result)
				}
				if !result.Success {
					return fmt.Errorf("import statuses: %s", result.Error)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d status records\n", result.ImportedCount)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of text")
	return cmd
}
