package codigo

import (
	"strings"

	"github.com/a2z-projetos/app-codigos-projeto/internal/utils"
)

// stopWords são artigos e conjunções ignorados na abreviação
var stopWords = map[string]struct{}{
	"E": {}, "DA": {}, "DO": {}, "DAS": {}, "DOS": {},
	"DE": {}, "A": {}, "O": {}, "AS": {}, "OS": {},
}

// Abbreviate gera a abreviação de um contratante a partir do nome completo.
//
//	"CARVALHO HOSKEN"       -> "CAH"
//	"IGUÁ"                  -> "IGU"
//	"COMPANHIA DE AGUAS DO RIO" -> "CAR"
//
// Tokens com dígitos (ex.: "A2Z") são descartados e os demais caracteres fora de
// A-Z são apagados ("O.A.S." vira "OAS"); se nada restar o resultado é
// ErrEmptyName. Nomes curtos geram abreviações curtas, sem preenchimento.
func Abbreviate(fullName string) (string, error) {
	words := abbreviationTokens(fullName)

	switch len(words) {
	case 0:
		return "", &ValidationError{Field: "nome", Value: fullName, Err: ErrEmptyName}
	case 1:
		return prefix(words[0], 3), nil
	case 2:
		return prefix(words[0], 2) + prefix(words[1], 1), nil
	default:
		var b strings.Builder
		for _, w := range words[:3] {
			b.WriteString(prefix(w, 1))
		}
		return b.String(), nil
	}
}

// ContractorLabel monta o rótulo exibido para um contratante
func ContractorLabel(abbreviation, fullName string) string {
	return abbreviation + " - " + strings.TrimSpace(fullName)
}

func abbreviationTokens(fullName string) []string {
	folded := strings.ToUpper(utils.RemoverAcentos(fullName))

	var words []string
	for _, w := range strings.Fields(folded) {
		if strings.ContainsAny(w, "0123456789") {
			continue
		}
		// pontuação é removida dentro do token, sem quebrá-lo
		w = strings.Map(func(r rune) rune {
			if r >= 'A' && r <= 'Z' {
				return r
			}
			return -1
		}, w)
		if w == "" {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		words = append(words, w)
	}
	return words
}

// prefix retorna até n caracteres ASCII de w
func prefix(w string, n int) string {
	if len(w) <= n {
		return w
	}
	return w[:n]
}
