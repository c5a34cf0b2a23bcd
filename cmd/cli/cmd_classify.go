package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"customer-support-router/internal/support"
)

func newClassifyCmd(opts *rootOptions) *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "classify <query...>",
		Short: "Print the intent category of a query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := opts.open(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			out, err := a.UseCase.Classify(ctx, support.RouteInput{Query: joinQuery(args)})
			if err != nil {
				return err
			}

			if explain && out.Fallback {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (fallback: %s)\n", out.Route, out.Reason)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Route)
			return nil
		},
	}
	cmd.Flags().BoolVar(&explain, "explain", false, "also print why the fallback category was used")
	return cmd
}
