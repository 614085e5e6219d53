package grading_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Academico-api/internal/domain"
	"github.com/jhoicas/Academico-api/internal/domain/entity"
	"github.com/jhoicas/Academico-api/internal/domain/grading"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCompute(t *testing.T) {
	tests := []struct {
		midterm, final string
		total          string
		letter         string
		passed         bool
	}{
		{"7", "8", "7.7", "B", true},
		{"10", "10", "10", "A", true},
		{"0", "0", "0", "F", false},
		// 1.05 + 2.94 = 3.99 -> redondea a 4.0 y aprueba
		{"3.5", "4.2", "4", "D", true},
		{"5", "3", "3.6", "F", false},
		{"8.5", "8.5", "8.5", "A", true},
		{"6", "5.4", "5.6", "C", true},
	}
	for _, tt := range tests {
		res, err := grading.Compute(d(tt.midterm), d(tt.final))
		require.NoError(t, err)
		assert.True(t, d(tt.total).Equal(res.Total), "%s/%s -> %s, obtuvo %s", tt.midterm, tt.final, tt.total, res.Total)
		assert.Equal(t, tt.letter, res.Letter)
		assert.Equal(t, tt.passed, res.Passed)
	}
}

func TestCompute_FueraDeRango(t *testing.T) {
	_, err := grading.Compute(d("10.5"), d("5"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = grading.Compute(d("5"), d("-1"))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestCompute_DosDecimalesRechazado(t *testing.T) {
	_, err := grading.Compute(d("7.25"), d("5"))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestGPA(t *testing.T) {
	lines := []entity.TranscriptLine{
		{Credits: 3, Total: d("8")},
		{Credits: 2, Total: d("6.5"), Passed: true},
		{Credits: 0, Total: d("10")}, // sin créditos no pondera
	}
	// (24 + 13) / 5 = 7.4
	assert.True(t, d("7.4").Equal(grading.GPA(lines)))
	assert.True(t, grading.GPA(nil).IsZero())
}

func TestCreditsEarned(t *testing.T) {
	lines := []entity.TranscriptLine{
		{Credits: 3, Passed: true},
		{Credits: 4, Passed: false},
		{Credits: 2, Passed: true},
	}
	assert.Equal(t, 5, grading.CreditsEarned(lines))
}
