package transcriptxml_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Academico-api/internal/application/ports"
	"github.com/jhoicas/Academico-api/internal/domain/entity"
	"github.com/jhoicas/Academico-api/internal/infrastructure/transcriptxml"
)

func sample() ports.TranscriptData {
	d := decimal.RequireFromString
	return ports.TranscriptData{
		Department: "Ingeniería",
		Student:    entity.Student{ID: "SV001", FullName: "Ana Pérez & Cía", ClassName: "IS-01", EnrollmentYear: 2024, Status: "active"},
		Lines: []entity.TranscriptLine{
			{Semester: "2025-1", CourseCode: "IS101", CourseName: "Programación <I>", Credits: 3,
				Midterm: d("7"), Final: d("8"), Total: d("7.7"), Letter: "B", Passed: true},
		},
		GPA:              d("7.7"),
		CreditsAttempted: 3,
		CreditsEarned:    3,
		IssuedAt:         time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestBuild_EstructuraYDigest(t *testing.T) {
	out, err := transcriptxml.NewBuilder().Build(sample())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "Transcript", root.Tag)
	assert.Equal(t, "SV001", root.FindElement("Student").SelectAttrValue("Id", ""))
	assert.Equal(t, "7.70", root.FindElement("Summary/GPA").Text())
	assert.Equal(t, "Programación <I>", root.FindElement("Courses/Course/Name").Text())
	assert.NotEmpty(t, root.FindElement("Integrity").Text())

	ok, err := transcriptxml.Verify(out)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBuild_Determinista(t *testing.T) {
	b := transcriptxml.NewBuilder()
	a, err := b.Build(sample())
	require.NoError(t, err)
	c, err := b.Build(sample())
	require.NoError(t, err)
	assert.Equal(t, a, c)
}

func TestVerify_DetectaAlteracion(t *testing.T) {
	out, err := transcriptxml.NewBuilder().Build(sample())
	require.NoError(t, err)

	tampered := bytes.Replace(out, []byte("<Total>7.7</Total>"), []byte("<Total>9.7</Total>"), 1)
	require.NotEqual(t, out, tampered)

	ok, err := transcriptxml.Verify(tampered)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerify_SinIntegrity(t *testing.T) {
	_, err := transcriptxml.Verify([]byte(`<Transcript xmlns="urn:academico:transcript:1"></Transcript>`))
	assert.True(t, errors.Is(err, transcriptxml.ErrNoIntegrity))
}
