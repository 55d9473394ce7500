package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/partnerhub/partnerhub-cli/internal/model"
	"github.com/partnerhub/partnerhub-cli/pkg/oracle"
)

// EmptyNetworkInsight is returned without an oracle call when there is
// nothing to analyze.
const EmptyNetworkInsight = "Adicione empresas para obter insights da IA."

const insightsPromptFmt = `Analise a seguinte lista de imobiliárias parceiras e forneça um resumo estratégico.
Considere o tamanho da rede (corretores), as taxas de comissão negociadas (1%% a 8%%) e os responsáveis internos pela contratação para identificar padrões de sucesso ou necessidade de revisão de acordos.
Forneça sugestões práticas para maximizar o ROI da rede e engajamento dos parceiros.
Lista: %s`

// insightsTemperature keeps the analysis varied without drifting off
// the supplied data.
const insightsTemperature = 0.7

// BuildInsightsPrompt summarizes each partner into one clause and
// embeds the list in the strategic-analysis prompt.
func BuildInsightsPrompt(companies []model.Company) string {
	summaries := make([]string, 0, len(companies))
	for _, c := range companies {
		summaries = append(summaries, fmt.Sprintf("%s (Corretores: %d, Comissão: %g%%, Contratado por: %s)",
			c.Name, c.BrokerCount, c.CommissionRate, c.HiringManager))
	}
	return fmt.Sprintf(insightsPromptFmt, strings.Join(summaries, ", "))
}

// Insights asks the oracle for a strategic read of the partner network.
// An empty collection short-circuits to a fixed message.
func Insights(ctx context.Context, client oracle.Client, companies []model.Company) (string, error) {
	if len(companies) == 0 {
		return EmptyNetworkInsight, nil
	}

	prompt := BuildInsightsPrompt(companies)
	zap.L().Debug("requesting network insights", zap.Int("partners", len(companies)))

	temperature := insightsTemperature
	text, err := client.Complete(ctx, prompt, &temperature)
	if err != nil {
		return "", eris.Wrap(err, "report: insights request failed")
	}
	return text, nil
}
