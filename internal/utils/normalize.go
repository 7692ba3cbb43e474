package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RemoverAcentos remove acentos e diacríticos preservando maiúsculas
// Exemplo: "IGUÁ" -> "IGUA", "Paranaguá" -> "Paranagua"
func RemoverAcentos(texto string) string {
	if texto == "" {
		return texto
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, err := transform.String(t, texto)
	if err != nil {
		return texto
	}
	return normalized
}

// NormalizarRotulo prepara um rótulo para comparação: sem acentos, minúsculo
// e com espaços colapsados
// Exemplo: "  CAH -  Carvalho  Hósken " -> "cah - carvalho hosken"
func NormalizarRotulo(rotulo string) string {
	return strings.ToLower(strings.Join(strings.Fields(RemoverAcentos(rotulo)), " "))
}

// MesmoRotulo compara rótulos ignorando maiúsculas, acentos e espaços extras
func MesmoRotulo(a, b string) bool {
	return NormalizarRotulo(a) == NormalizarRotulo(b)
}
