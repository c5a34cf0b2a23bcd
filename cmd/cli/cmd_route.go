package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"customer-support-router/internal/support"
)

func newRouteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "route <query...>",
		Short: "Classify a query and print the handler's answer as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := opts.open(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			resp, err := a.UseCase.Route(ctx, support.RouteInput{Query: joinQuery(args)})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		},
	}
}
