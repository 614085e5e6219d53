// Package access define qué páginas del dashboard puede abrir cada rol.
// La tabla es estática: cambiar permisos exige desplegar una nueva versión.
package access

import "github.com/jhoicas/Academico-api/internal/domain/entity"

// Identificadores de página del dashboard.
const (
	PageDashboard   = "dashboard"
	PageProfile     = "profile"
	PageDepartments = "departments"
	PageStudents    = "students"
	PageCourses     = "courses"
	PageEnrollment  = "enrollment"
	PageGrading     = "grading"
	PageMyGrades    = "my-grades"
	PageTuition     = "tuition"
	PagePayments    = "payments"
	PageReports     = "reports"
)

// allPages en el orden en que el menú las muestra.
var allPages = []string{
	PageDashboard,
	PageProfile,
	PageDepartments,
	PageStudents,
	PageCourses,
	PageEnrollment,
	PageGrading,
	PageMyGrades,
	PageTuition,
	PagePayments,
	PageReports,
}

// rolePages allow-list por rol. admin ve todo.
var rolePages = map[string][]string{
	entity.RoleAdmin: allPages,
	entity.RoleDocente: {
		PageDashboard, PageProfile, PageStudents, PageCourses, PageGrading,
	},
	entity.RoleEstudiante: {
		PageDashboard, PageProfile, PageCourses, PageEnrollment, PageMyGrades, PageTuition,
	},
	entity.RoleTesoreria: {
		PageDashboard, PageProfile, PageStudents, PageTuition, PagePayments, PageReports,
	},
}

// index rol -> set de páginas, construido una sola vez.
var index = buildIndex()

func buildIndex() map[string]map[string]struct{} {
	idx := make(map[string]map[string]struct{}, len(rolePages))
	for role, pages := range rolePages {
		set := make(map[string]struct{}, len(pages))
		for _, p := range pages {
			set[p] = struct{}{}
		}
		idx[role] = set
	}
	return idx
}

// IsValidRole indica si el rol es uno de los cuatro definidos.
func IsValidRole(role string) bool {
	_, ok := rolePages[role]
	return ok
}

// IsValidPage indica si la página existe en el dashboard.
func IsValidPage(page string) bool {
	_, ok := index[entity.RoleAdmin][page]
	return ok
}

// Pages devuelve una copia de las páginas permitidas para el rol (nil si el rol no existe).
func Pages(role string) []string {
	pages, ok := rolePages[role]
	if !ok {
		return nil
	}
	out := make([]string, len(pages))
	copy(out, pages)
	return out
}

// CanAccess informa si el rol puede abrir la página.
func CanAccess(role, page string) bool {
	_, ok := index[role][page]
	return ok
}

// HomePage primera página a la que se redirige tras el login.
func HomePage(role string) string {
	if pages := rolePages[role]; len(pages) > 0 {
		return pages[0]
	}
	return ""
}
