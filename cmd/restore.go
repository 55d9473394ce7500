package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/partnerhub/partnerhub-cli/internal/export"
)

var restoreYes bool

var restoreCmd = &cobra.Command{
	Use:   "restore <backup.json>",
	Short: "Replace the partner collection from a JSON backup",
	Long:  "Validates a JSON backup and replaces the stored collection wholesale. A malformed file aborts the restore and leaves existing data untouched.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		data, err := os.ReadFile(args[0])
		if err != nil {
			return eris.Wrap(err, "read backup file")
		}

		companies, err := export.ParseBackup(data)
		if err != nil {
			return err
		}

		if !restoreYes {
			fmt.Printf("Substituir toda a coleção por %d registros de %s? Use --yes para confirmar.\n", len(companies), args[0])
			return nil
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		if err := st.ReplaceAll(ctx, companies); err != nil {
			return err
		}

		zap.L().Info("backup restored",
			zap.Int("partners", len(companies)),
			zap.String("file", args[0]),
		)
		fmt.Printf("Coleção restaurada: %d parceiros.\n", len(companies))
		return nil
	},
}

func init() {
	restoreCmd.Flags().BoolVar(&restoreYes, "yes", false, "skip the confirmation step")
	rootCmd.AddCommand(restoreCmd)
}
