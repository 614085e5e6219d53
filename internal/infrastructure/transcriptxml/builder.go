// Package transcriptxml construye el certificado de notas en XML.
//
// El documento se cierra con un elemento <Integrity> que contiene el SHA-256 (base64)
// de la forma canónica C14N del documento sin ese elemento. Verify recalcula el digest
// para detectar alteraciones.
package transcriptxml

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	"github.com/jhoicas/Academico-api/internal/application/ports"
)

// Namespace y algoritmos declarados en el documento.
const (
	Namespace    = "urn:academico:transcript:1"
	AlgSHA256    = "http://www.w3.org/2001/04/xmlenc#sha256"
	AlgC14N      = "http://www.w3.org/TR/2001/REC-xml-c14n-20010315"
	integrityTag = "Integrity"
)

// ErrNoIntegrity el documento no trae el elemento <Integrity>.
var ErrNoIntegrity = errors.New("transcriptxml: documento sin elemento Integrity")

var _ ports.TranscriptXMLBuilder = (*Builder)(nil)

// Builder implementa ports.TranscriptXMLBuilder con etree + c14n.
type Builder struct{}

// NewBuilder crea el servicio.
func NewBuilder() *Builder { return &Builder{} }

// Build genera el XML compacto (sin indentación, para que el digest sea estable) y le agrega el digest.
func (b *Builder) Build(data ports.TranscriptData) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Transcript")
	root.CreateAttr("xmlns", Namespace)
	root.CreateAttr("Version", "1.0")

	root.CreateElement("IssuedAt").SetText(data.IssuedAt.UTC().Format("2006-01-02T15:04:05Z"))
	root.CreateElement("Department").SetText(data.Department)

	st := root.CreateElement("Student")
	st.CreateAttr("Id", data.Student.ID)
	st.CreateElement("FullName").SetText(data.Student.FullName)
	st.CreateElement("ClassName").SetText(data.Student.ClassName)
	st.CreateElement("Major").SetText(data.Student.Major)
	st.CreateElement("EnrollmentYear").SetText(strconv.Itoa(data.Student.EnrollmentYear))
	st.CreateElement("Status").SetText(data.Student.Status)

	courses := root.CreateElement("Courses")
	for _, l := range data.Lines {
		c := courses.CreateElement("Course")
		c.CreateAttr("Semester", l.Semester)
		c.CreateAttr("Code", l.CourseCode)
		c.CreateAttr("Credits", strconv.Itoa(l.Credits))
		c.CreateAttr("Passed", strconv.FormatBool(l.Passed))
		c.CreateElement("Name").SetText(l.CourseName)
		c.CreateElement("Midterm").SetText(l.Midterm.StringFixed(1))
		c.CreateElement("Final").SetText(l.Final.StringFixed(1))
		c.CreateElement("Total").SetText(l.Total.StringFixed(1))
		c.CreateElement("Letter").SetText(l.Letter)
	}

	sum := root.CreateElement("Summary")
	sum.CreateElement("CreditsAttempted").SetText(strconv.Itoa(data.CreditsAttempted))
	sum.CreateElement("CreditsEarned").SetText(strconv.Itoa(data.CreditsEarned))
	sum.CreateElement("GPA").SetText(data.GPA.StringFixed(2))

	digest, err := documentDigest(doc)
	if err != nil {
		return nil, err
	}
	integrity := root.CreateElement(integrityTag)
	integrity.CreateAttr("Algorithm", AlgSHA256)
	integrity.CreateAttr("Canonicalization", AlgC14N)
	integrity.SetText(digest)

	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("transcriptxml: serializar: %w", err)
	}
	return out, nil
}

// Verify comprueba que el digest de <Integrity> coincide con el contenido del documento.
func Verify(xmlBytes []byte) (bool, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(xmlBytes); err != nil {
		return false, fmt.Errorf("transcriptxml: parsear XML: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return false, fmt.Errorf("transcriptxml: documento sin raíz")
	}
	integrity := root.SelectElement(integrityTag)
	if integrity == nil {
		return false, ErrNoIntegrity
	}
	expected := integrity.Text()
	root.RemoveChild(integrity)

	digest, err := documentDigest(doc)
	if err != nil {
		return false, err
	}
	return digest == expected, nil
}

// documentDigest SHA-256 (base64) de la forma canónica del documento.
func documentDigest(doc *etree.Document) (string, error) {
	raw, err := doc.WriteToBytes()
	if err != nil {
		return "", fmt.Errorf("transcriptxml: serializar: %w", err)
	}
	canonical, err := canonicalizeXML(raw)
	if err != nil {
		return "", fmt.Errorf("transcriptxml: canonicalizar: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

func canonicalizeXML(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	return c14n.Canonicalize(dec)
}
