package dto

// DepartmentResponse fila del directorio. ServerName solo se expone a administradores.
type DepartmentResponse struct {
	BranchName string `json:"branch_name"`
	ServerName string `json:"server_name,omitempty"`
}
