package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newModelsCmd(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the models offered by the LLM server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			model := newLanguageModel(state.cfg.LLM)

			models, err := listModelsWithProgress(cmd.Context(), cmd.ErrOrStderr(), model, state.cfg.LLM.BaseURL)
			if err != nil {
				return err
			}

			if len(models) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No models available.")
				return err
			}
			for i, id := range models {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%d) %s\n", i+1, id); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
