package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/partnerhub/partnerhub-cli/internal/brdoc"
	"github.com/partnerhub/partnerhub-cli/internal/model"
	"github.com/partnerhub/partnerhub-cli/internal/store"
	"github.com/partnerhub/partnerhub-cli/pkg/brasilapi"
)

var partnersCmd = &cobra.Command{
	Use:   "partners",
	Short: "Manage partner records",
	Long:  "Commands for listing, inspecting, completing, and removing partner records.",
}

// -- partners list --

var partnersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List partners",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		name, _ := cmd.Flags().GetString("name")
		document, _ := cmd.Flags().GetString("document")
		status, _ := cmd.Flags().GetString("status")
		manager, _ := cmd.Flags().GetString("manager")

		companies, err := st.ListCompanies(ctx, store.Filter{
			Name:          name,
			Document:      document,
			Status:        model.Status(status),
			HiringManager: manager,
		})
		if err != nil {
			return eris.Wrap(err, "partners list")
		}

		if len(companies) == 0 {
			fmt.Fprintln(os.Stderr, "No partners found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNOME\tDOCUMENTO\tTELEFONE\tSTATUS\tGESTOR HUB")
		for _, c := range companies {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				c.ID, c.Name, c.CNPJ, c.Phone, c.Status, c.HiringManager)
		}
		return w.Flush()
	},
}

// -- partners show --

var partnersShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one partner record as JSON",
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

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(c)
	},
}

// -- partners delete --

var partnersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a partner record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		if err := st.DeleteCompany(ctx, args[0]); err != nil {
			return err
		}
		zap.L().Info("partner deleted", zap.String("id", args[0]))
		return nil
	},
}

// -- partners complete --

var partnersCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Fill in a draft partner and optionally activate it",
	Long:  "Updates the fields passed as flags on an imported draft. Document and CEP values are masked on the way in; --activate flips the record to Ativo.",
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

		applyStringFlag(cmd, "name", &c.Name)
		applyStringFlag(cmd, "razao-social", &c.RazaoSocial)
		applyStringFlag(cmd, "responsible", &c.Responsible)
		applyStringFlag(cmd, "partnership-manager", &c.PartnershipManager)
		applyStringFlag(cmd, "email", &c.Email)
		applyStringFlag(cmd, "website", &c.Website)
		applyStringFlag(cmd, "address", &c.Address)
		applyStringFlag(cmd, "notes", &c.Notes)
		applyStringFlag(cmd, "creci-uf", &c.CreciUF)

		if cmd.Flags().Changed("document") {
			doc, _ := cmd.Flags().GetString("document")
			c.CNPJ = brdoc.MaskDocument(doc)
			if len(brdoc.Digits(doc)) > 11 {
				c.DocType = model.DocTypeCNPJ
			} else {
				c.DocType = model.DocTypeCPF
			}
		}
		if cmd.Flags().Changed("creci") {
			creci, _ := cmd.Flags().GetString("creci")
			c.CRECI = brdoc.Digits(creci)
			c.DocType = model.DocTypeCRECI
		}
		if cmd.Flags().Changed("cep") {
			cep, _ := cmd.Flags().GetString("cep")
			c.CEP = brdoc.MaskCEP(cep)
		}
		if cmd.Flags().Changed("phone") {
			phone, _ := cmd.Flags().GetString("phone")
			c.Phone = brdoc.MaskPhone(phone)
		}
		if cmd.Flags().Changed("commission") {
			c.CommissionRate, _ = cmd.Flags().GetFloat64("commission")
		}
		if cmd.Flags().Changed("brokers") {
			n, _ := cmd.Flags().GetInt("brokers")
			if n < 0 {
				n = 0
			}
			c.BrokerCount = n
		}
		if fromCNPJ, _ := cmd.Flags().GetBool("from-cnpj"); fromCNPJ {
			if err := backfillFromCNPJ(ctx, c); err != nil {
				return err
			}
		}
		if activate, _ := cmd.Flags().GetBool("activate"); activate {
			c.Status = model.StatusActive
		}

		if err := st.UpdateCompany(ctx, *c); err != nil {
			return err
		}
		zap.L().Info("partner updated",
			zap.String("id", c.ID),
			zap.String("status", string(c.Status)),
		)
		return nil
	},
}

func applyStringFlag(cmd *cobra.Command, name string, dst *string) {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetString(name)
		*dst = v
	}
}

// backfillFromCNPJ fills the record from the public registry. A missing
// registry entry is not an error: the record keeps its current fields
// and the user is told inline.
func backfillFromCNPJ(ctx context.Context, c *model.Company) error {
	digits := brdoc.Digits(c.CNPJ)
	if len(digits) != 14 {
		return eris.Errorf("record document %q is not a CNPJ", c.CNPJ)
	}

	client := brasilapi.NewClient(
		brasilapi.WithBaseURL(cfg.BrasilAPI.BaseURL),
		brasilapi.WithRateLimit(cfg.BrasilAPI.Rate),
	)
	rec, err := client.LookupCNPJ(ctx, digits)
	if err != nil {
		if eris.Is(err, brasilapi.ErrNotFound) {
			fmt.Fprintln(os.Stderr, "CNPJ não encontrado no registro; campos mantidos.")
			return nil
		}
		return err
	}

	c.Name = rec.DisplayName()
	c.RazaoSocial = rec.RazaoSocial
	c.CEP = brdoc.MaskCEP(rec.CEP)
	c.Address = model.AddressParts{
		Street:       rec.Logradouro,
		Number:       rec.Numero,
		Complement:   rec.Complemento,
		Neighborhood: rec.Bairro,
		City:         rec.Municipio,
		State:        rec.UF,
	}.Compose()
	if c.Phone == "" && rec.DDDTelefone1 != "" {
		c.Phone = brdoc.MaskPhone(rec.DDDTelefone1)
	}
	if c.Email == "" {
		c.Email = rec.Email
	}
	return nil
}

func init() {
	partnersListCmd.Flags().String("name", "", "filter by name (accent-insensitive substring)")
	partnersListCmd.Flags().String("document", "", "filter by document digits")
	partnersListCmd.Flags().String("status", "", "filter by status (Ativo|Inativo)")
	partnersListCmd.Flags().String("manager", "", "filter by hiring manager")

	partnersCompleteCmd.Flags().String("name", "", "partner name")
	partnersCompleteCmd.Flags().String("razao-social", "", "legal name")
	partnersCompleteCmd.Flags().String("document", "", "CNPJ or CPF")
	partnersCompleteCmd.Flags().String("creci", "", "CRECI registry number")
	partnersCompleteCmd.Flags().String("creci-uf", "", "CRECI state")
	partnersCompleteCmd.Flags().String("cep", "", "postal code")
	partnersCompleteCmd.Flags().String("address", "", "full address")
	partnersCompleteCmd.Flags().String("responsible", "", "operational contact")
	partnersCompleteCmd.Flags().String("partnership-manager", "", "partnership manager")
	partnersCompleteCmd.Flags().String("email", "", "contact email")
	partnersCompleteCmd.Flags().String("phone", "", "contact phone")
	partnersCompleteCmd.Flags().String("website", "", "website")
	partnersCompleteCmd.Flags().String("notes", "", "free-form notes")
	partnersCompleteCmd.Flags().Float64("commission", 0, "commission rate percent")
	partnersCompleteCmd.Flags().Int("brokers", 0, "broker count (clamped at 0)")
	partnersCompleteCmd.Flags().Bool("activate", false, "set status to Ativo")
	partnersCompleteCmd.Flags().Bool("from-cnpj", false, "backfill name/address/contacts from the CNPJ registry")

	partnersCmd.AddCommand(partnersListCmd, partnersShowCmd, partnersDeleteCmd, partnersCompleteCmd)
	rootCmd.AddCommand(partnersCmd)
}
