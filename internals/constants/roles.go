package constants

import "fmt"

const (
	RoleAdmin       = "admin"
	RoleCoordinator = "coordinator"
	RoleTeacher     = "teacher"
)

// Mensajes de error por rol
const (
	ErrOnlyAdminsCanAccess       = "❌ Solo un admin puede acceder a %s."
	ErrOnlyCoordinatorsCanAccess = "❌ Solo un coordinador (o admin) puede acceder a %s."
	ErrOnlyTeachersCanAccess     = "❌ Solo un docente (o admin) puede acceder a %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorCoordinator(feature string) string {
	return fmt.Sprintf(ErrOnlyCoordinatorsCanAccess, feature)
}

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleCoordinator,
		RoleTeacher,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	CoordinatorAndAbove = []string{
		RoleCoordinator,
		RoleAdmin,
	}

	TeacherAndAbove = []string{
		RoleTeacher,
		RoleCoordinator,
		RoleAdmin,
	}
)
