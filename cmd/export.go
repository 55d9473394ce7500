package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/partnerhub/partnerhub-cli/internal/export"
	"github.com/partnerhub/partnerhub-cli/internal/model"
	"github.com/partnerhub/partnerhub-cli/internal/store"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the partner collection",
	Long:  "Renders the partner collection into CSV, fixed-width TXT, XLSX, JSON backup, or PDF report files.",
}

func exportCompanies(cmd *cobra.Command) ([]model.Company, error) {
	ctx := cmd.Context()

	st, err := initStore(ctx)
	if err != nil {
		return nil, err
	}
	defer st.Close() //nolint:errcheck

	status, _ := cmd.Flags().GetString("status")
	return st.ListCompanies(ctx, store.Filter{Status: model.Status(status)})
}

// exportTo runs render against --out, or stdout when unset.
func exportTo(render func(f *os.File) error) error {
	if exportOut == "" {
		return render(os.Stdout)
	}
	f, err := os.Create(exportOut)
	if err != nil {
		return eris.Wrap(err, "create export file")
	}
	if err := render(f); err != nil {
		f.Close() //nolint:errcheck
		return err
	}
	if err := f.Close(); err != nil {
		return eris.Wrap(err, "close export file")
	}
	zap.L().Info("export written", zap.String("path", exportOut))
	return nil
}

var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Export as UTF-8 CSV with BOM",
	RunE: func(cmd *cobra.Command, _ []string) error {
		companies, err := exportCompanies(cmd)
		if err != nil {
			return err
		}
		return exportTo(func(f *os.File) error {
			return export.WriteCSV(f, companies)
		})
	},
}

var exportTXTCmd = &cobra.Command{
	Use:   "txt",
	Short: "Export as a fixed-width text ledger",
	RunE: func(cmd *cobra.Command, _ []string) error {
		companies, err := exportCompanies(cmd)
		if err != nil {
			return err
		}
		return exportTo(func(f *os.File) error {
			return export.WriteTXT(f, companies, time.Now())
		})
	},
}

var exportXLSXCmd = &cobra.Command{
	Use:   "xlsx",
	Short: "Export as an XLSX workbook",
	RunE: func(cmd *cobra.Command, _ []string) error {
		companies, err := exportCompanies(cmd)
		if err != nil {
			return err
		}
		return exportTo(func(f *os.File) error {
			return export.WriteXLSX(f, companies)
		})
	},
}

var exportJSONCmd = &cobra.Command{
	Use:   "json",
	Short: "Export a restorable JSON backup",
	RunE: func(cmd *cobra.Command, _ []string) error {
		companies, err := exportCompanies(cmd)
		if err != nil {
			return err
		}
		return exportTo(func(f *os.File) error {
			return export.WriteBackup(f, companies)
		})
	},
}

var exportPDFCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Export the consolidated partner report",
	Long:  "Writes the consolidated summary PDF, or a single-partner dossier when --partner is given.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		partnerID, _ := cmd.Flags().GetString("partner")

		if partnerID != "" {
			ctx := cmd.Context()
			st, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close() //nolint:errcheck

			c, err := st.GetCompany(ctx, partnerID)
			if err != nil {
				return err
			}
			return exportTo(func(f *os.File) error {
				return export.WriteDossierPDF(f, *c)
			})
		}

		companies, err := exportCompanies(cmd)
		if err != nil {
			return err
		}
		return exportTo(func(f *os.File) error {
			return export.WriteSummaryPDF(f, companies, time.Now())
		})
	},
}

var exportGeoPDFCmd = &cobra.Command{
	Use:   "geo-pdf",
	Short: "Export the geographic presence report",
	RunE: func(cmd *cobra.Command, _ []string) error {
		companies, err := exportCompanies(cmd)
		if err != nil {
			return err
		}
		if _, ok := export.PartnerBounds(companies); !ok {
			fmt.Fprintln(os.Stderr, "Aviso: nenhum parceiro geolocalizado; o relatório sai sem área de cobertura.")
		}
		return exportTo(func(f *os.File) error {
			return export.WriteGeoPDF(f, companies)
		})
	},
}

func init() {
	exportCmd.PersistentFlags().StringVar(&exportOut, "out", "", "output file (default stdout)")
	exportCmd.PersistentFlags().String("status", "", "only export partners with this status")
	exportPDFCmd.Flags().String("partner", "", "partner id for an individual dossier")
	exportCmd.AddCommand(exportCSVCmd, exportTXTCmd, exportXLSXCmd, exportJSONCmd, exportPDFCmd, exportGeoPDFCmd)
	rootCmd.AddCommand(exportCmd)
}
