package codigo

import (
	"fmt"
	"strings"
)

// LegendItem é uma linha da legenda de um código
type LegendItem struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

const (
	legendErrorTitle = "Erro"
	legendErrorText  = "Código inválido para gerar legenda."
)

// DecodeToLegend traduz cada segmento do código para o rótulo do dicionário.
//
// A função é total: com menos de 12 segmentos devolve uma única linha de erro,
// e valores ausentes do dicionário aparecem como "<valor> não encontrado".
// Segmentos além do 12º são ignorados.
func DecodeToLegend(identifier string, dict Dictionary) []LegendItem {
	parts := strings.Split(identifier, Separator)
	if len(parts) < SegmentCount {
		return []LegendItem{{Title: legendErrorTitle, Text: legendErrorText}}
	}

	items := make([]LegendItem, 0, SegmentCount)
	for _, c := range Categories() {
		value := parts[c]
		text, ok := dict.Lookup(c, value)
		if !ok {
			text = fmt.Sprintf("%s não encontrado", value)
		}
		items = append(items, LegendItem{Title: c.Title(), Text: text})
	}

	items = append(items,
		LegendItem{Title: "Número Sequencial", Text: fmt.Sprintf("%s - Número Sequencial (4 dígitos)", parts[segmentNumero])},
		LegendItem{Title: "Data", Text: fmt.Sprintf("%s - Data (DDMMAA)", parts[segmentData])},
		LegendItem{Title: "Versão", Text: fmt.Sprintf("%s - Versão (Ex: R0)", parts[segmentVersao])},
	)
	return items
}

// IsLegendError informa se a legenda é a linha única de código inválido
func IsLegendError(items []LegendItem) bool {
	return len(items) == 1 && items[0].Title == legendErrorTitle
}

// LegendMarkdown formata a legenda como tabela Markdown
func LegendMarkdown(identifier string, items []LegendItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Legenda `%s`\n\n", identifier)
	b.WriteString("| Campo | Descrição |\n")
	b.WriteString("|---|---|\n")
	for _, item := range items {
		fmt.Fprintf(&b, "| %s | %s |\n", escapeCell(item.Title), escapeCell(item.Text))
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.NewReplacer("|", `\|`, "\n", " ").Replace(s)
}
