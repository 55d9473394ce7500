package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/partnerhub/partnerhub-cli/internal/model"
	"github.com/partnerhub/partnerhub-cli/internal/prospect"
)

var (
	searchKind    string
	searchLat     float64
	searchLng     float64
	searchImport  bool
	searchRawText bool
)

var searchKinds = map[string]model.SearchKind{
	"region":  model.SearchRegion,
	"company": model.SearchCompanyName,
	"broker":  model.SearchBroker,
	"phone":   model.SearchPhone,
	"email":   model.SearchEmail,
	"website": model.SearchWebsite,
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Prospect new partners with an AI-grounded search",
	Long:  "Dispatches a grounded search, extracts structured leads from the answer, and renders them with WhatsApp outreach links. Use --import to persist every lead as a draft partner.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		kind, ok := searchKinds[searchKind]
		if !ok {
			return eris.Errorf("unknown search kind: %s", searchKind)
		}

		req := model.SearchRequest{Kind: kind}
		if len(args) > 0 {
			req.QueryText = args[0]
		}
		if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lng") {
			req.Geo = &model.GeoPoint{Lat: searchLat, Lng: searchLng}
		}
		if err := req.Validate(); err != nil {
			return err
		}

		searcher, err := initSearcher()
		if err != nil {
			return err
		}

		result, leads, err := searcher.Search(ctx, req)
		if err != nil {
			return err
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		// Only place-oriented queries are worth replaying later.
		if req.QueryText != "" && (kind == model.SearchRegion || kind == model.SearchCompanyName) {
			if err := st.SaveRecentSearch(ctx, model.RecentSearch{Kind: kind, QueryText: req.QueryText}); err != nil {
				zap.L().Warn("could not save recent search", zap.Error(err))
			}
		}

		if searchRawText {
			fmt.Println(result.RawText)
			fmt.Println()
		}

		if len(leads) == 0 {
			fmt.Fprintln(os.Stderr, "Nenhum resultado estruturado encontrado.")
			return nil
		}

		templates, err := loadOutreachTemplates()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NOME\tENDEREÇO\tTELEFONE\tREGISTRO\tTIPO\tWEBSITE\tWHATSAPP")
		for _, lead := range leads {
			website := ""
			if lead.Website != nil {
				website = *lead.Website
			}

			waURL := ""
			if lead.Phone != "" {
				msg, merr := templates.Message(lead, kind)
				if merr == nil {
					waURL, _ = prospect.WhatsAppURL(lead.Phone, msg)
				}
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				lead.Name, lead.Address, lead.Phone, lead.RegistryNumber, lead.RegistryType, website, waURL)
		}
		w.Flush()

		if len(result.Citations) > 0 {
			fmt.Println("\nFontes:")
			for _, c := range result.Citations {
				fmt.Printf("  [%s] %s %s\n", c.Kind, c.Title, c.URI)
			}
		}

		if searchImport {
			for _, lead := range leads {
				draft := prospect.Reconcile(lead, kind)
				created, err := st.CreateCompany(ctx, draft)
				if err != nil {
					return eris.Wrap(err, "import lead")
				}
				zap.L().Info("lead imported",
					zap.String("id", created.ID),
					zap.String("name", created.Name),
				)
			}
			fmt.Printf("\n%d leads importados como rascunho.\n", len(leads))
		}

		return nil
	},
}

var searchRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recent prospecting queries",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		recent, err := st.ListRecentSearches(ctx)
		if err != nil {
			return err
		}
		if len(recent) == 0 {
			fmt.Fprintln(os.Stderr, "No recent searches.")
			return nil
		}
		for _, r := range recent {
			fmt.Printf("%s\t%s\n", r.Kind, r.QueryText)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchKind, "kind", "region", "search kind: "+strings.Join(searchKindNames(), "|"))
	searchCmd.Flags().Float64Var(&searchLat, "lat", 0, "geographic bias latitude")
	searchCmd.Flags().Float64Var(&searchLng, "lng", 0, "geographic bias longitude")
	searchCmd.Flags().BoolVar(&searchImport, "import", false, "persist every lead as a draft partner")
	searchCmd.Flags().BoolVar(&searchRawText, "raw", false, "print the raw oracle answer before the parsed leads")
	searchCmd.AddCommand(searchRecentCmd)
	rootCmd.AddCommand(searchCmd)
}

func searchKindNames() []string {
	return []string{"region", "company", "broker", "phone", "email", "website"}
}
