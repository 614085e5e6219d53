package usecase

import (
	"context"

	"github.com/jhoicas/Academico-api/internal/application/dto"
	"github.com/jhoicas/Academico-api/internal/domain/entity"
	"github.com/jhoicas/Academico-api/internal/domain/repository"
)

// EnrollmentUseCase matrícula del estudiante autenticado.
type EnrollmentUseCase struct {
	repo            repository.EnrollmentRepository
	currentSemester string
}

// NewEnrollmentUseCase construye el caso de uso.
func NewEnrollmentUseCase(repo repository.EnrollmentRepository, currentSemester string) *EnrollmentUseCase {
	return &EnrollmentUseCase{repo: repo, currentSemester: currentSemester}
}

// List secciones matriculadas. semester "all" lista todos los semestres.
func (uc *EnrollmentUseCase) List(ctx context.Context, department, studentID, semester string) (*dto.EnrollmentListResponse, error) {
	switch semester {
	case "all":
		semester = ""
	case "":
		semester = uc.currentSemester
	}
	list, err := uc.repo.ListByStudent(ctx, department, studentID, semester)
	if err != nil {
		return nil, err
	}
	out := &dto.EnrollmentListResponse{Semester: semester, Items: make([]dto.EnrollmentResponse, 0, len(list))}
	for i := range list {
		out.Credits += list[i].Credits
		out.Items = append(out.Items, toEnrollmentResponse(&list[i]))
	}
	return out, nil
}

// Enroll matricula al estudiante. Cupo, horario y ventana los valida sp_enroll.
func (uc *EnrollmentUseCase) Enroll(ctx context.Context, department, studentID string, in dto.EnrollRequest) (*dto.EnrollmentResponse, error) {
	e, err := uc.repo.Enroll(ctx, department, studentID, in.SectionID)
	if err != nil {
		return nil, err
	}
	out := toEnrollmentResponse(e)
	return &out, nil
}

// Cancel anula la matrícula en la sección.
func (uc *EnrollmentUseCase) Cancel(ctx context.Context, department, studentID, sectionID string) error {
	return uc.repo.Cancel(ctx, department, studentID, sectionID)
}

func toEnrollmentResponse(e *entity.Enrollment) dto.EnrollmentResponse {
	return dto.EnrollmentResponse{
		SectionID:  e.SectionID,
		CourseCode: e.CourseCode,
		CourseName: e.CourseName,
		Credits:    e.Credits,
		Semester:   e.Semester,
		Schedule:   e.Schedule,
		Room:       e.Room,
		EnrolledAt: e.EnrolledAt,
	}
}
