package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/partnerhub/partnerhub-cli/internal/report"
	"github.com/partnerhub/partnerhub-cli/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Dashboard numbers for the partner network",
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

		now := time.Now()
		stats := report.ComputeStats(companies)
		upcoming := report.UpcomingContacts(companies, now)

		fmt.Println("=== Rede de Parceiros ===")
		fmt.Printf("Parceiros:          %d\n", stats.TotalCompanies)
		fmt.Printf("Corretores:         %d\n", stats.TotalBrokers)
		fmt.Printf("Média por unidade:  %d\n", stats.AvgBrokers)
		fmt.Printf("Ativos:             %d%%\n", stats.ActivePercentage)
		fmt.Println()

		if len(upcoming) == 0 {
			fmt.Println("Nenhum contato agendado para os próximos 7 dias.")
			return nil
		}

		fmt.Println("Próximos contatos:")
		for _, c := range upcoming {
			fmt.Printf("  %-8s %s\n", report.Urgency(c.NextContactDate, now), c.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
