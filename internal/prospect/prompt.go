package prospect

import (
	"fmt"

	"github.com/rotisserie/eris"

	"github.com/partnerhub/partnerhub-cli/internal/model"
)

// regionPlaceholder is substituted for the query text on region
// searches that carry only a geographic bias.
const regionPlaceholder = "esta região geográfica"

const companyPromptFmt = `Realize uma busca exaustiva por empresas imobiliárias. O termo de busca fornecido é: %q.
Este termo pode ser uma região geográfica ou o nome de uma imobiliária específica.

Para cada empresa encontrada, você DEVE retornar obrigatoriamente:
1. Nome da Imobiliária (Sem prefixos como 'Imobiliária X')
2. Endereço Completo (FORMATO OBRIGATÓRIO: Logradouro, Número - Bairro - Cidade/UF)
3. Telefone de Contato
4. Website (se houver)

Formate cada empresa em uma única linha seguindo o padrão: "NOME | LOGRADOURO, NUMERO - BAIRRO - CIDADE/UF | Telefone: (00) 00000-0000 | Website: url".
Se o termo for um nome de empresa, retorne todas as unidades ou informações detalhadas dessa empresa específica.`

const brokerPromptFmt = `Localize corretores de imóveis autônomos na região de %s.
Para cada profissional encontrado, você DEVE retornar:
1. Nome Completo
2. Endereço ou Área de Atuação (FORMATO: Rua, Número ou 'Atendimento Local' - Bairro - Cidade/UF)
3. Telefone de Contato
4. Número do CRECI (Se houver)

Formate cada resultado em uma única linha: "NOME | ENDEREÇO | Telefone: (00) 00000-0000 | CRECI: 00000".`

const phonePromptFmt = `IDENTIFICAÇÃO REVERSA: Quem é o proprietário do telefone %s?
Foque exclusivamente no mercado imobiliário.

Retorne no formato: "NOME | ENDEREÇO (Logradouro, Número - Bairro - Cidade/UF) | Telefone: %s"`

const emailPromptFmt = `Identifique a empresa imobiliária associada ao e-mail: %s.
Retorne no formato: "NOME | ENDEREÇO (Logradouro, Número - Bairro - Cidade/UF) | Telefone: (00) 00000-0000"`

const websitePromptFmt = `Extraia informações comerciais da imobiliária dona do website: %s.
Ignore se for um portal de anúncios (como VivaReal). Foque em sites de imobiliárias próprias.

Retorne no formato: "NOME | ENDEREÇO (Logradouro, Número - Bairro - Cidade/UF) | Telefone: (00) 00000-0000 | Website: %s"`

// BuildPrompt renders the fixed instruction template for a search
// request. The extractor's heuristics are tuned against the delimiter
// conventions these templates request, so templates stay stable.
// Performs no I/O; an invalid request is rejected before any dispatch.
func BuildPrompt(req model.SearchRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", eris.Wrap(err, "prospect: build prompt")
	}

	query := req.QueryText
	if query == "" {
		query = regionPlaceholder
	}

	switch req.Kind {
	case model.SearchRegion, model.SearchCompanyName:
		return fmt.Sprintf(companyPromptFmt, query), nil
	case model.SearchBroker:
		return fmt.Sprintf(brokerPromptFmt, query), nil
	case model.SearchPhone:
		return fmt.Sprintf(phonePromptFmt, query, query), nil
	case model.SearchEmail:
		return fmt.Sprintf(emailPromptFmt, query), nil
	case model.SearchWebsite:
		return fmt.Sprintf(websitePromptFmt, query, query), nil
	default:
		return "", eris.Errorf("prospect: unknown search kind %q", req.Kind)
	}
}
