package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shuttle/internal/api"
)

func newRetryCommand(cctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "retry <name>",
		Short: "Move a failed file back into the import folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cctx.withServices(func(svc *services) error {
				result := svc.files.RetryFile(cmd.Context(), args[0], cctx.actor())
				return renderOperation(cmd, result, asJSON, fmt.Sprintf("Moved %s to %s", args[0], svc.config.Folders.ImportLabel))
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of text")
	return cmd
}

func newRenameCommand(cctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "rename <old-name> <new-name>",
		Short: "Move a failed file into the import folder under a new name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cctx.withServices(func(svc *services) error {
				result := svc.files.RenameFile(cmd.Context(), args[0], args[1], cctx.actor())
				return renderOperation(cmd, result, asJSON, fmt.Sprintf("Renamed %s to %s in %s", args[0], args[1], svc.config.Folders.ImportLabel))
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of text")
	return cmd
}

func newDeleteCommand(cctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Remove a file from the failed folder along with its status record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cctx.withServices(func(svc *services) error {
				result := svc.files.DeleteFailedFile(cmd.Context(), args[0], cctx.actor())
				return renderOperation(cmd, result, asJSON, fmt.Sprintf("Deleted %s from %s", args[0], svc.config.Folders.FailedLabel))
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of text")
	return cmd
}

func newExpandCommand(cctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "expand <name>",
		Short: "Split a multi-prefix failed file into per-prefix copies",
		Long: `Split a failed file whose name carries several two-character prefixes into
one copy per prefix in the import folder. PBCC_A_B_C.txt becomes
PB_A_B_C.txt and CC_A_B_C.txt; the original is removed once the copies
exist.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cctx.withServices(func(svc *services) error {
				result := svc.files.ExpandFilePrefixes(cmd.Context(), args[0], cctx.actor())
				if asJSON {
					return writeJSON(cmd, result)
				}
				if !result.Success {
					if result.Count > 0 {
						fmt.Fprintf(cmd.OutOrStdout(), "Created %d copies before the failure\n", result.Count)
					}
					return fmt.Errorf("expand %s: %s", args[0], result.Error)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Expanded %s into %d files in %s\n", args[0], result.Count, svc.config.Folders.ImportLabel)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of text")
	return cmd
}

// renderOperation prints a uniform success/failure line for the simple
// mutations; a warning on success is surfaced but does not fail the command.
func renderOperation(cmd *cobra.Command, result api.OperationResult, asJSON bool, successLine string) error {
	if asJSON {
		return writeJSON(cmd, result)
	}
	if !result.Success {
		return fmt.Errorf("%s", result.Error)
	}
	fmt.Fprintln(cmd.OutOrStdout(), successLine)
	if result.Warning != "" {
		fmt.Fprintln(cmd.OutOrStdout(), renderStatusLine("Warning", statusWarn, result.Warning, shouldColorize(cmd.OutOrStdout())))
	}
	return nil
}
