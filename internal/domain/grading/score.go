// Package grading contiene la regla de calificación del departamento:
// nota final = 30% parcial + 70% examen final, escala 0-10 con un decimal.
package grading

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Academico-api/internal/domain"
	"github.com/jhoicas/Academico-api/internal/domain/entity"
)

var (
	maxScore     = decimal.NewFromInt(10)
	midtermShare = decimal.RequireFromString("0.3")
	finalShare   = decimal.RequireFromString("0.7")
	passMark     = decimal.RequireFromString("4.0")
)

// letterBands umbrales inferiores, de mayor a menor.
var letterBands = []struct {
	min    decimal.Decimal
	letter string
}{
	{decimal.RequireFromString("8.5"), "A"},
	{decimal.RequireFromString("7.0"), "B"},
	{decimal.RequireFromString("5.5"), "C"},
	{passMark, "D"},
}

// Result nota calculada.
type Result struct {
	Total  decimal.Decimal
	Letter string
	Passed bool
}

// ValidateScore exige 0 <= s <= 10 con un decimal como máximo.
func ValidateScore(name string, s decimal.Decimal) error {
	if s.IsNegative() || s.GreaterThan(maxScore) {
		return fmt.Errorf("%w: %s debe estar entre 0 y 10", domain.ErrInvalidInput, name)
	}
	if !s.Equal(s.Round(1)) {
		return fmt.Errorf("%w: %s admite un solo decimal", domain.ErrInvalidInput, name)
	}
	return nil
}

// Compute valida ambas notas y calcula total, letra y aprobación.
func Compute(midterm, final decimal.Decimal) (Result, error) {
	if err := ValidateScore("midterm", midterm); err != nil {
		return Result{}, err
	}
	if err := ValidateScore("final", final); err != nil {
		return Result{}, err
	}
	total := midterm.Mul(midtermShare).Add(final.Mul(finalShare)).Round(1)
	return Result{
		Total:  total,
		Letter: Letter(total),
		Passed: !total.LessThan(passMark),
	}, nil
}

// Letter convierte una nota total en letra.
func Letter(total decimal.Decimal) string {
	for _, b := range letterBands {
		if !total.LessThan(b.min) {
			return b.letter
		}
	}
	return "F"
}

// GPA promedio ponderado por créditos, redondeado a dos decimales.
func GPA(lines []entity.TranscriptLine) decimal.Decimal {
	var points decimal.Decimal
	credits := 0
	for _, l := range lines {
		if l.Credits <= 0 {
			continue
		}
		points = points.Add(l.Total.Mul(decimal.NewFromInt(int64(l.Credits))))
		credits += l.Credits
	}
	if credits == 0 {
		return decimal.Zero
	}
	return points.Div(decimal.NewFromInt(int64(credits))).Round(2)
}

// CreditsEarned suma los créditos de las asignaturas aprobadas.
func CreditsEarned(lines []entity.TranscriptLine) int {
	n := 0
	for _, l := range lines {
		if l.Passed {
			n += l.Credits
		}
	}
	return n
}
