package dto

// LoginRequest credenciales más el departamento contra el que se autentica.
type LoginRequest struct {
	Username   string `json:"username" validate:"required,max=60"`
	Password   string `json:"password" validate:"required"`
	Department string `json:"department" validate:"required,max=120"`
}

// SessionResponse sesión que el dashboard guarda en local storage.
type SessionResponse struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	FullName   string `json:"fullName,omitempty"`
	Role       string `json:"role"`
	Department string `json:"department"`
	IsStudent  bool   `json:"isStudent"`
}

// LoginResponse token firmado, sesión y páginas permitidas.
type LoginResponse struct {
	Token    string          `json:"token"`
	Session  SessionResponse `json:"session"`
	Pages    []string        `json:"pages"`
	HomePage string          `json:"homePage"`
}

// ChangePasswordRequest cambio de contraseña del usuario autenticado.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72,nefield=CurrentPassword"`
}

// PagesResponse páginas permitidas para el rol.
type PagesResponse struct {
	Role     string   `json:"role"`
	Pages    []string `json:"pages"`
	HomePage string   `json:"homePage"`
}

// PageCheckResponse respuesta de verificación de una página.
type PageCheckResponse struct {
	Page    string `json:"page"`
	Allowed bool   `json:"allowed"`
}
