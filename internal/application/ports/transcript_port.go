package ports

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Academico-api/internal/domain/entity"
)

// TranscriptData datos completos de un certificado de notas.
type TranscriptData struct {
	Department       string
	Student          entity.Student
	Lines            []entity.TranscriptLine
	GPA              decimal.Decimal
	CreditsAttempted int
	CreditsEarned    int
	IssuedAt         time.Time
}

// TranscriptPDFGenerator puerto de salida para el certificado en PDF.
type TranscriptPDFGenerator interface {
	Generate(data TranscriptData) ([]byte, error)
}

// TranscriptXMLBuilder puerto de salida para el certificado en XML verificable.
// El documento incluye el digest SHA-256 de su forma canónica.
type TranscriptXMLBuilder interface {
	Build(data TranscriptData) ([]byte, error)
}
