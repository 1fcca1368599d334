package spreadsheet

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeHeader reduce un encabezado a minúsculas ASCII sin tildes ni separadores,
// de modo que "Código Cliente", "codigo_cliente" y "CodigoCliente" coinciden.
func NormalizeHeader(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	var b strings.Builder
	for _, r := range strings.ToLower(folded) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// headerIndex mapea índice de columna de la hoja → clave canónica.
// Encabezados desconocidos se ignoran; si dos columnas coinciden gana la primera.
func headerIndex(header []string, columns []string) (map[int]string, []string) {
	canonical := make(map[string]string, len(columns))
	for _, c := range columns {
		canonical[NormalizeHeader(c)] = c
	}
	idx := make(map[int]string, len(header))
	taken := make(map[string]bool, len(columns))
	var found []string
	for i, h := range header {
		key, ok := canonical[NormalizeHeader(h)]
		if !ok || taken[key] {
			continue
		}
		idx[i] = key
		taken[key] = true
		found = append(found, key)
	}
	return idx, found
}
