package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/lora-bbs/internal/adapters/render/inspect"
	"github.com/bnema/lora-bbs/internal/application"
	"github.com/bnema/lora-bbs/internal/ports"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newInspectCmd(state *rootState) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the stored public room, pending mailboxes and boards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, closeRepo, err := openRepository(state.cfg.Storage)
			if err != nil {
				return fmt.Errorf("open message repository: %w", err)
			}
			defer func() {
				if err := closeRepo(); err != nil {
					state.log.Warn("close storage", zap.Error(err))
				}
			}()

			store := application.OpenMessageStore(cmd.Context(), repo, ports.SystemClock{}, state.log.Named("store"))
			return writeSnapshot(cmd, store.Snapshot(), asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func writeSnapshot(cmd *cobra.Command, snapshot application.Snapshot, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(snapshot)
	}

	rendered, err := inspect.Render(snapshot, inspect.RenderOptions{})
	if err != nil {
		return fmt.Errorf("render snapshot: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
