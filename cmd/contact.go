package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/partnerhub/partnerhub-cli/internal/model"
)

var contactTypes = map[string]model.ContactType{
	"telefone": model.ContactPhone,
	"whatsapp": model.ContactWhatsApp,
	"email":    model.ContactEmail,
	"reuniao":  model.ContactMeeting,
	"video":    model.ContactVideo,
	"visita":   model.ContactVisit,
	"evento":   model.ContactEvent,
	"outros":   model.ContactOther,
}

var partnersContactCmd = &cobra.Command{
	Use:   "contact <partner-id>",
	Short: "Log a touchpoint with a partner",
	Long:  "Prepends an entry to the partner's contact history and refreshes the denormalized last-contact fields. --next schedules the follow-up shown by stats.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		typeName, _ := cmd.Flags().GetString("type")
		summary, _ := cmd.Flags().GetString("summary")
		details, _ := cmd.Flags().GetString("details")
		date, _ := cmd.Flags().GetString("date")
		next, _ := cmd.Flags().GetString("next")

		contactType, ok := contactTypes[typeName]
		if !ok {
			return eris.Errorf("unknown contact type: %s", typeName)
		}
		if summary == "" {
			return eris.New("a contact summary is required")
		}
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}
		for _, d := range []string{date, next} {
			if d == "" {
				continue
			}
			if _, err := time.Parse("2006-01-02", d); err != nil {
				return eris.Errorf("invalid date %q, expected YYYY-MM-DD", d)
			}
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

		entry := model.ContactHistoryEntry{
			ID:              uuid.NewString(),
			Date:            date,
			Type:            contactType,
			Summary:         summary,
			Details:         details,
			NextContactDate: next,
		}
		c.ContactHistory = append([]model.ContactHistoryEntry{entry}, c.ContactHistory...)
		c.SyncLatestContact()

		if err := st.UpdateCompany(ctx, *c); err != nil {
			return err
		}
		zap.L().Info("contact logged",
			zap.String("partner", c.ID),
			zap.String("type", string(contactType)),
			zap.String("next", next),
		)
		fmt.Printf("Contato registrado em %s (%s).\n", date, contactType)
		return nil
	},
}

func init() {
	partnersContactCmd.Flags().String("type", "telefone", "contact type: telefone|whatsapp|email|reuniao|video|visita|evento|outros")
	partnersContactCmd.Flags().String("summary", "", "one-line summary (required)")
	partnersContactCmd.Flags().String("details", "", "free-form details")
	partnersContactCmd.Flags().String("date", "", "contact date YYYY-MM-DD (default today)")
	partnersContactCmd.Flags().String("next", "", "next contact date YYYY-MM-DD")
	partnersCmd.AddCommand(partnersContactCmd)
}
