package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/partnerhub/partnerhub-cli/internal/brdoc"
	"github.com/partnerhub/partnerhub-cli/internal/model"
)

var brokersCmd = &cobra.Command{
	Use:   "broker",
	Short: "Manage a partner's broker roster",
	Long:  "Adds and removes individual brokers on a partner record. The broker count follows the roster length.",
}

var brokerAddCmd = &cobra.Command{
	Use:   "add <partner-id>",
	Short: "Add a broker to a partner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		name, _ := cmd.Flags().GetString("name")
		creci, _ := cmd.Flags().GetString("creci")
		creciUF, _ := cmd.Flags().GetString("uf")
		email, _ := cmd.Flags().GetString("email")

		if name == "" || creci == "" || creciUF == "" {
			return eris.New("broker name, creci and uf are required")
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		c, err := st.GetCompany(ctx, args[0])
		if err != nil {
			return err
		}

		broker := model.Broker{
			ID:      uuid.NewString(),
			Name:    name,
			CRECI:   brdoc.Digits(creci),
			CreciUF: creciUF,
			Email:   email,
		}
		c.Brokers = append(c.Brokers, broker)
		c.BrokerCount = len(c.Brokers)

		if err := st.UpdateCompany(ctx, *c); err != nil {
			return err
		}
		zap.L().Info("broker added",
			zap.String("partner", c.ID),
			zap.String("broker", broker.ID),
			zap.String("name", broker.Name),
		)
		fmt.Printf("Corretor cadastrado: %s (%s)\n", broker.Name, broker.ID)
		return nil
	},
}

var brokerRemoveCmd = &cobra.Command{
	Use:   "remove <partner-id> <broker-id>",
	Short: "Remove a broker from a partner",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		c, err := st.GetCompany(ctx, args[0])
		if err != nil {
			return err
		}

		kept := c.Brokers[:0]
		for _, b := range c.Brokers {
			if b.ID != args[1] {
				kept = append(kept, b)
			}
		}
		if len(kept) == len(c.Brokers) {
			return eris.Errorf("partner %s has no broker %s", args[0], args[1])
		}
		c.Brokers = kept
		c.BrokerCount = len(c.Brokers)

		if err := st.UpdateCompany(ctx, *c); err != nil {
			return err
		}
		zap.L().Info("broker removed",
			zap.String("partner", c.ID),
			zap.String("broker", args[1]),
		)
		return nil
	},
}

var brokerListCmd = &cobra.Command{
	Use:   "list <partner-id>",
	Short: "List a partner's brokers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		c, err := st.GetCompany(ctx, args[0])
		if err != nil {
			return err
		}
		if len(c.Brokers) == 0 {
			fmt.Fprintln(os.Stderr, "No brokers registered.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNOME\tCRECI\tUF\tEMAIL")
		for _, b := range c.Brokers {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", b.ID, b.Name, b.CRECI, b.CreciUF, b.Email)
		}
		return w.Flush()
	},
}

func init() {
	brokerAddCmd.Flags().String("name", "", "broker name (required)")
	brokerAddCmd.Flags().String("creci", "", "CRECI registry number (required)")
	brokerAddCmd.Flags().String("uf", "", "CRECI state (required)")
	brokerAddCmd.Flags().String("email", "", "broker email")

	brokersCmd.AddCommand(brokerAddCmd, brokerRemoveCmd, brokerListCmd)
	partnersCmd.AddCommand(brokersCmd)
}
