package usecase

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Academico-api/internal/domain"
)

// resolveSemester usa el semestre pedido o, si viene vacío, el semestre en curso.
func resolveSemester(requested, current string) (string, error) {
	s := strings.TrimSpace(requested)
	if s == "" {
		s = current
	}
	if s == "" {
		return "", fmt.Errorf("%w: semester es requerido", domain.ErrInvalidInput)
	}
	return s, nil
}
