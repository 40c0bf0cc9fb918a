package models

// Empleado represents one row of the empleados table. JSON field names
// follow the persisted schema.
type Empleado struct {
	ID       int    `json:"id"`
	Nombres  string `json:"nombres"`
	Telefono string `json:"telefono"`
}
