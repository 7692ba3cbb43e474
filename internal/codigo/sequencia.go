package codigo

import (
	"fmt"
	"sort"
	"strconv"
)

// MaxNumber é o maior número sequencial representável em 4 dígitos
const MaxNumber = 9999

// NextNumber devolve o menor inteiro positivo ainda não usado, com 4 dígitos.
// Números liberados por exclusão são reaproveitados. Entradas que não são
// inteiros positivos são ignoradas, assim como repetições.
//
// É uma sugestão calculada sobre um snapshot: a exclusividade depende da
// restrição de unicidade do armazenamento.
func NextNumber(existing []string) (string, error) {
	used := make([]int, 0, len(existing))
	seen := make(map[int]struct{}, len(existing))
	for _, s := range existing {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		used = append(used, n)
	}
	sort.Ints(used)

	next := 1
	for _, n := range used {
		if n == next {
			next++
			continue
		}
		if n > next {
			break
		}
	}

	if next > MaxNumber {
		return "", ErrSequenceExhausted
	}
	return formatInt(next), nil
}

// FormatNumber valida um número sequencial digitado e o completa com zeros à
// esquerda. Aceita de 1 a 4 dígitos ASCII com valor entre 1 e 9999.
func FormatNumber(numero string) (string, error) {
	if numero == "" {
		return "", &ValidationError{Field: "numero", Err: ErrEmptyField}
	}
	if len(numero) > NumberWidth {
		return "", &ValidationError{Field: "numero", Value: numero, Err: ErrInvalidNumber}
	}
	for _, r := range numero {
		if r < '0' || r > '9' {
			return "", &ValidationError{Field: "numero", Value: numero, Err: ErrInvalidNumber}
		}
	}

	n, _ := strconv.Atoi(numero)
	if n < 1 {
		return "", &ValidationError{Field: "numero", Value: numero, Err: ErrInvalidNumber}
	}
	return formatInt(n), nil
}

func formatInt(n int) string {
	return fmt.Sprintf("%0*d", NumberWidth, n)
}
