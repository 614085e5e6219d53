// Package textnorm normaliza nombres para compararlos sin importar mayúsculas,
// tildes ni espacios repetidos ("Ingeniería  de Sistemas" == "ingenieria de sistemas").
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold devuelve la clave de comparación de s.
func Fold(s string) string {
	// transform.Chain no es seguro para uso concurrente: se arma uno por llamada.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	out = cases.Fold().String(out)
	return strings.Join(strings.Fields(out), " ")
}
