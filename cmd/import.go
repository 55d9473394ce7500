package main

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/partnerhub/partnerhub-cli/internal/prospect"
)

var importKind string

var importCmd = &cobra.Command{
	Use:   "import <raw line>",
	Short: "Turn a raw search-result line into a draft partner",
	Long:  "Parses one line of oracle output through the extractor and classifier, reconciles it into a draft partner record, and persists it for later completion.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		kind, ok := searchKinds[importKind]
		if !ok {
			return eris.Errorf("unknown search kind: %s", importKind)
		}

		lead := prospect.Classify(prospect.ParseLine(args[0]), kind)
		draft := prospect.Reconcile(lead, kind)

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		created, err := st.CreateCompany(ctx, draft)
		if err != nil {
			return eris.Wrap(err, "import lead")
		}

		zap.L().Info("lead imported",
			zap.String("id", created.ID),
			zap.String("name", created.Name),
			zap.String("docType", string(created.DocType)),
		)
		fmt.Printf("Rascunho criado: %s (%s)\n", created.Name, created.ID)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importKind, "kind", "region", "search kind the line came from: "+strings.Join(searchKindNames(), "|"))
	rootCmd.AddCommand(importCmd)
}
