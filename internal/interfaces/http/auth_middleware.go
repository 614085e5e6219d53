package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Academico-api/internal/domain"
	"github.com/jhoicas/Academico-api/internal/domain/access"
	"github.com/jhoicas/Academico-api/internal/domain/entity"
	"github.com/jhoicas/Academico-api/pkg/jwt"
)

// LocalIdentity clave de c.Locals donde AuthMiddleware deja la sesión.
const LocalIdentity = "identity"

// AuthMiddleware valida el Bearer Token JWT y deja la identidad de la sesión en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return errorJSON(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return errorJSON(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return errorJSON(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "token vacío")
		}
		id, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return errorJSON(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "token inválido o expirado")
		}
		if id.Department == "" || !access.IsValidRole(id.Role) {
			return errorJSON(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "sesión incompleta")
		}
		c.Locals(LocalIdentity, id)
		return c.Next()
	}
}

// RequireRole deja pasar solo a los roles indicados. Va después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return errorJSON(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "sesión no encontrada")
		}
		if _, ok := allowed[role]; !ok {
			return errorJSON(c, fiber.StatusForbidden, "FORBIDDEN", "el rol '"+role+"' no tiene permiso para esta operación")
		}
		return c.Next()
	}
}

// RequirePage verifica contra la tabla de acceso que el rol de la sesión puede abrir la página.
//
//   - 401 si no hay sesión (AuthMiddleware no corrió o falló).
//   - 403 si la página no está en la allow-list del rol.
func RequirePage(page string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return errorJSON(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "sesión no encontrada")
		}
		if !access.CanAccess(role, page) {
			return errorJSON(c, fiber.StatusForbidden, "PAGE_FORBIDDEN", "el rol '"+role+"' no puede acceder a '"+page+"'")
		}
		return c.Next()
	}
}

// GetIdentity devuelve la sesión del contexto (después del middleware de auth).
func GetIdentity(c *fiber.Ctx) (jwt.Identity, bool) {
	id, ok := c.Locals(LocalIdentity).(jwt.Identity)
	return id, ok
}

// GetUserID devuelve el ID de la cuenta de la sesión.
func GetUserID(c *fiber.Ctx) string {
	id, _ := GetIdentity(c)
	return id.UserID
}

// GetRole devuelve el rol de la sesión.
func GetRole(c *fiber.Ctx) string {
	id, _ := GetIdentity(c)
	return id.Role
}

// GetDepartment devuelve el departamento de la sesión; todas las consultas van a su servidor.
func GetDepartment(c *fiber.Ctx) string {
	id, _ := GetIdentity(c)
	return id.Department
}

// isStudent la sesión es de un estudiante.
func isStudent(id jwt.Identity) bool {
	return id.IsStudent || id.Role == entity.RoleEstudiante
}

// authorizeStudentRead un estudiante solo puede leer sus propios datos; el personal necesita
// acceso a la página indicada.
func authorizeStudentRead(c *fiber.Ctx, studentID, page string) error {
	id, found := GetIdentity(c)
	if !found {
		return domain.ErrUnauthorized
	}
	if isStudent(id) {
		if !strings.EqualFold(id.UserID, studentID) {
			return fmt.Errorf("%w: un estudiante solo puede consultar sus propios datos", domain.ErrForbidden)
		}
		return nil
	}
	if !access.CanAccess(id.Role, page) {
		return fmt.Errorf("%w: el rol '%s' no puede acceder a '%s'", domain.ErrForbidden, id.Role, page)
	}
	return nil
}
