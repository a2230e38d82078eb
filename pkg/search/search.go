// Package search implementa la búsqueda de texto de las tablas del dashboard:
// coincidencia por subcadena sin distinguir mayúsculas ni acentos ("Pérez" ~ "perez").
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize quita diacríticos, aplica case folding y recorta espacios.
// Los transformers de x/text guardan estado, por eso se crean en cada llamada.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return cases.Fold().String(strings.TrimSpace(out))
}

// Matches indica si query aparece en alguno de los campos. Una query vacía coincide siempre.
func Matches(query string, fields ...string) bool {
	q := Normalize(query)
	if q == "" {
		return true
	}
	for _, f := range fields {
		if f == "" {
			continue
		}
		if strings.Contains(Normalize(f), q) {
			return true
		}
	}
	return false
}
