package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Academico-api/internal/application/dto"
	"github.com/jhoicas/Academico-api/internal/domain"
	"github.com/jhoicas/Academico-api/internal/domain/entity"
	"github.com/jhoicas/Academico-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// StudentUseCase fichas de estudiantes del departamento.
type StudentUseCase struct {
	repo repository.StudentRepository
}

// NewStudentUseCase construye el caso de uso.
func NewStudentUseCase(repo repository.StudentRepository) *StudentUseCase {
	return &StudentUseCase{repo: repo}
}

// List lista estudiantes con filtros y paginación.
func (uc *StudentUseCase) List(ctx context.Context, department string, in dto.StudentListRequest) (*dto.StudentListResponse, error) {
	in.DefaultPage()
	list, total, err := uc.repo.List(ctx, department, entity.StudentFilter{
		Search:    strings.TrimSpace(in.Search),
		ClassName: in.Class,
		Status:    in.Status,
		Limit:     in.Limit,
		Offset:    in.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.StudentResponse, 0, len(list))
	for i := range list {
		items = append(items, toStudentResponse(&list[i]))
	}
	return &dto.StudentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

// GetByID obtiene una ficha. Devuelve (nil, nil) si no existe.
func (uc *StudentUseCase) GetByID(ctx context.Context, department, id string) (*dto.StudentResponse, error) {
	s, err := uc.repo.GetByID(ctx, department, id)
	if err != nil || s == nil {
		return nil, err
	}
	out := toStudentResponse(s)
	return &out, nil
}

// Create registra la ficha y su cuenta (rol estudiante). El username por defecto es el código.
func (uc *StudentUseCase) Create(ctx context.Context, department string, in dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	s := &entity.Student{
		ID:             strings.ToUpper(strings.TrimSpace(in.ID)),
		FullName:       strings.TrimSpace(in.FullName),
		Email:          in.Email,
		Phone:          in.Phone,
		ClassName:      in.ClassName,
		Major:          in.Major,
		EnrollmentYear: in.EnrollmentYear,
		Status:         entity.StudentStatusActive,
	}
	if in.DateOfBirth != "" {
		dob, err := time.Parse(dateLayout, in.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("%w: date_of_birth debe tener formato %s", domain.ErrInvalidInput, dateLayout)
		}
		s.DateOfBirth = &dob
	}
	username := strings.ToLower(strings.TrimSpace(in.Username))
	if username == "" {
		username = strings.ToLower(s.ID)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, department, s, username, string(hash)); err != nil {
		return nil, err
	}
	out := toStudentResponse(s)
	return &out, nil
}

// Update modifica los campos no vacíos. Devuelve (nil, nil) si no existe.
func (uc *StudentUseCase) Update(ctx context.Context, department, id string, in dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	s, err := uc.repo.GetByID(ctx, department, id)
	if err != nil || s == nil {
		return nil, err
	}
	if in.FullName != "" {
		s.FullName = strings.TrimSpace(in.FullName)
	}
	if in.Email != "" {
		s.Email = in.Email
	}
	if in.Phone != "" {
		s.Phone = in.Phone
	}
	if in.ClassName != "" {
		s.ClassName = in.ClassName
	}
	if in.Major != "" {
		s.Major = in.Major
	}
	if in.Status != "" {
		s.Status = in.Status
	}
	if err := uc.repo.Update(ctx, department, s); err != nil {
		return nil, err
	}
	out := toStudentResponse(s)
	return &out, nil
}

func toStudentResponse(s *entity.Student) dto.StudentResponse {
	out := dto.StudentResponse{
		ID:             s.ID,
		FullName:       s.FullName,
		Email:          s.Email,
		Phone:          s.Phone,
		ClassName:      s.ClassName,
		Major:          s.Major,
		EnrollmentYear: s.EnrollmentYear,
		Status:         s.Status,
	}
	if s.DateOfBirth != nil {
		out.DateOfBirth = s.DateOfBirth.Format(dateLayout)
	}
	return out
}
