package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Academico-api/internal/application/dto"
	"github.com/jhoicas/Academico-api/internal/domain"
	"github.com/jhoicas/Academico-api/internal/domain/entity"
	"github.com/jhoicas/Academico-api/internal/domain/repository"
)

// CourseUseCase secciones y listas de clase.
type CourseUseCase struct {
	repo            repository.CourseRepository
	currentSemester string
}

// NewCourseUseCase construye el caso de uso.
func NewCourseUseCase(repo repository.CourseRepository, currentSemester string) *CourseUseCase {
	return &CourseUseCase{repo: repo, currentSemester: currentSemester}
}

// ListSections lista secciones; sin semestre usa el semestre en curso (si está configurado).
func (uc *CourseUseCase) ListSections(ctx context.Context, department string, in dto.SectionListRequest) ([]dto.SectionResponse, error) {
	semester := in.Semester
	if semester == "" {
		semester = uc.currentSemester
	}
	list, err := uc.repo.ListSections(ctx, department, entity.SectionFilter{
		Semester:   semester,
		LecturerID: in.LecturerID,
		CourseCode: in.CourseCode,
		OnlyOpen:   in.Open,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.SectionResponse, 0, len(list))
	for i := range list {
		out = append(out, toSectionResponse(&list[i]))
	}
	return out, nil
}

// Roster lista de clase de la sección. lecturerID no vacío exige que el docente la dicte.
func (uc *CourseUseCase) Roster(ctx context.Context, department, sectionID, lecturerID string) (*dto.RosterResponse, error) {
	section, err := uc.repo.GetSection(ctx, department, sectionID)
	if err != nil {
		return nil, err
	}
	if section == nil {
		return nil, domain.ErrNotFound
	}
	if lecturerID != "" && section.LecturerID != lecturerID {
		return nil, domain.ErrNotSectionLecturer
	}
	entries, err := uc.repo.Roster(ctx, department, sectionID)
	if err != nil {
		return nil, err
	}
	out := &dto.RosterResponse{
		Section: toSectionResponse(section),
		Entries: make([]dto.RosterEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		out.Entries = append(out.Entries, dto.RosterEntryResponse{
			StudentID: e.StudentID,
			FullName:  e.FullName,
			ClassName: e.ClassName,
			Midterm:   nullDecimal(e.Midterm),
			Final:     nullDecimal(e.Final),
			Total:     nullDecimal(e.Total),
			Letter:    e.Letter,
		})
	}
	return out, nil
}

func toSectionResponse(s *entity.CourseSection) dto.SectionResponse {
	available := s.Capacity - s.Enrolled
	if available < 0 {
		available = 0
	}
	return dto.SectionResponse{
		ID:             s.ID,
		CourseCode:     s.CourseCode,
		CourseName:     s.CourseName,
		Credits:        s.Credits,
		Semester:       s.Semester,
		LecturerID:     s.LecturerID,
		LecturerName:   s.LecturerName,
		Capacity:       s.Capacity,
		Enrolled:       s.Enrolled,
		Available:      available,
		Schedule:       s.Schedule,
		Room:           s.Room,
		EnrollmentOpen: s.EnrollmentOpen,
	}
}

func nullDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
