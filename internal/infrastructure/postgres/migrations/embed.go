// Package migrations contiene el esquema versionado con goose: la base primaria
// (directorio de departamentos) y el esquema común de cada base de departamento,
// incluidos los procedimientos almacenados que invoca la API.
package migrations

import "embed"

// Primary migraciones de la base primaria.
//
//go:embed primary/*.sql
var Primary embed.FS

// Department migraciones de cada base de departamento.
//
//go:embed department/*.sql
var Department embed.FS

// Directorios dentro de cada FS.
const (
	PrimaryDir    = "primary"
	DepartmentDir = "department"
)
