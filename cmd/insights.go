package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/partnerhub/partnerhub-cli/internal/report"
	"github.com/partnerhub/partnerhub-cli/internal/store"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "AI strategic summary of the partner network",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		companies, err := st.ListCompanies(ctx, store.Filter{})
		if err != nil {
			return err
		}

		client, err := initOracle()
		if err != nil {
			return err
		}

		text, err := report.Insights(ctx, client, companies)
		if err != nil {
			return err
		}

		fmt.Println(text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}
