// Package platform is the client for the platform service that owns users
// (teachers, students, admins) and subjects. This service never stores that
// reference data itself; every lookup goes over the wire.
package platform

type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Role        Role   `json:"role"`
	IsActive    bool   `json:"is_active"`
}

type Subject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
