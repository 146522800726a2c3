package constants

import "fmt"

// Role yang dikenal platform
const (
	RoleStudent = "student"
	RoleTrainer = "trainer"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

// Template pesan error role
const (
	ErrOnlyTrainersCanAccess = "❌ Hanya trainer, manager, atau admin yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess   = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyManagersCanAccess = "❌ Hanya manager atau admin yang boleh mengakses fitur %s."
	ErrOnlyStudentsCanAccess = "❌ Hanya student yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorTrainer(feature string) string {
	return fmt.Sprintf(ErrOnlyTrainersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorManager(feature string) string {
	return fmt.Sprintf(ErrOnlyManagersCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleTrainer,
		RoleManager,
		RoleAdmin,
	}

	StaffRoles = []string{
		RoleTrainer,
		RoleManager,
		RoleAdmin,
	}

	ManagerAndAbove = []string{
		RoleManager,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	ScratchpadWriterRoles = []string{
		RoleStudent,
		RoleTrainer,
		RoleAdmin,
	}
)
