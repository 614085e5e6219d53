package entity

// Department fila de v_department_directory: rama académica y el servidor que la atiende.
type Department struct {
	BranchName string
	ServerName string
}
