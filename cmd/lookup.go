package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/partnerhub/partnerhub-cli/internal/brdoc"
	"github.com/partnerhub/partnerhub-cli/internal/model"
	"github.com/partnerhub/partnerhub-cli/pkg/brasilapi"
	"github.com/partnerhub/partnerhub-cli/pkg/viacep"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Look up Brazilian public registries",
}

var lookupCNPJCmd = &cobra.Command{
	Use:   "cnpj <number>",
	Short: "Look up a company in the CNPJ registry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		client := brasilapi.NewClient(
			brasilapi.WithBaseURL(cfg.BrasilAPI.BaseURL),
			brasilapi.WithRateLimit(cfg.BrasilAPI.Rate),
		)

		rec, err := client.LookupCNPJ(ctx, args[0])
		if err != nil {
			if eris.Is(err, brasilapi.ErrNotFound) {
				fmt.Println("CNPJ não encontrado.")
				return nil
			}
			return err
		}

		address := model.AddressParts{
			Street:       rec.Logradouro,
			Number:       rec.Numero,
			Complement:   rec.Complemento,
			Neighborhood: rec.Bairro,
			City:         rec.Municipio,
			State:        rec.UF,
		}.Compose()

		fmt.Printf("Nome:     %s\n", rec.DisplayName())
		fmt.Printf("CNPJ:     %s\n", brdoc.MaskCNPJ(args[0]))
		fmt.Printf("CEP:      %s\n", brdoc.MaskCEP(rec.CEP))
		fmt.Printf("Endereço: %s\n", address)
		if rec.DDDTelefone1 != "" {
			fmt.Printf("Telefone: %s\n", brdoc.MaskPhone(rec.DDDTelefone1))
		}
		if rec.Email != "" {
			fmt.Printf("Email:    %s\n", rec.Email)
		}
		return nil
	},
}

var lookupCEPCmd = &cobra.Command{
	Use:   "cep <number>",
	Short: "Look up an address by postal code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		client := viacep.NewClient(
			viacep.WithBaseURL(cfg.ViaCEP.BaseURL),
			viacep.WithRateLimit(cfg.ViaCEP.Rate),
		)

		addr, err := client.Lookup(ctx, args[0])
		if err != nil {
			if eris.Is(err, viacep.ErrNotFound) {
				fmt.Println("CEP não encontrado.")
				return nil
			}
			return err
		}

		fmt.Printf("CEP:         %s\n", addr.CEP)
		fmt.Printf("Logradouro:  %s\n", addr.Logradouro)
		fmt.Printf("Bairro:      %s\n", addr.Bairro)
		fmt.Printf("Cidade:      %s\n", addr.Localidade)
		fmt.Printf("UF:          %s\n", addr.UF)
		return nil
	},
}

func init() {
	lookupCmd.AddCommand(lookupCNPJCmd, lookupCEPCmd)
	rootCmd.AddCommand(lookupCmd)
}
