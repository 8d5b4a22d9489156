package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tothambrus11/heterogeneous-entity-stores/history"
)

func newHistoryCmd(g *globalOptions) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "history [CASE...]",
		Short: "List archived results; without arguments, list archived cases",
		RunE: func(cmd *cobra.Command, args []string) error {
			archive, err := history.Open(path, history.Options{Logger: g.logger})
			if err != nil {
				return err
			}
			defer archive.Close()

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				labels, err := archive.Labels()
				if err != nil {
					return err
				}
				for _, label := range labels {
					fmt.Fprintln(out, label)
				}
				return nil
			}

			for _, label := range args {
				recs, err := archive.List(label)
				if err != nil {
					return err
				}
				if len(recs) == 0 {
					return fmt.Errorf("no archived results for %q", label)
				}
				for _, rec := range recs {
					fmt.Fprintln(out, rec)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "history", "hesbench.db", "Bolt file written by run --history")
	return cmd
}
