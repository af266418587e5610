package constants

import "fmt"

// Role tags untuk varian user (satu tabel users + payload per role).
const (
	RoleDonor        = "donor"
	RoleOrganization = "organization"
	RoleInfluencer   = "influencer"
	RoleAdmin        = "admin"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess        = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyOrganizationsCanAccess = "❌ Hanya organization yang boleh mengakses fitur %s."
	ErrOnlyInfluencersCanAccess   = "❌ Hanya influencer yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorOrganization(feature string) string {
	return fmt.Sprintf(ErrOnlyOrganizationsCanAccess, feature)
}

func RoleErrorInfluencer(feature string) string {
	return fmt.Sprintf(ErrOnlyInfluencersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleDonor,
		RoleOrganization,
		RoleInfluencer,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	CampaignOwnerRoles = []string{
		RoleOrganization,
		RoleAdmin,
	}

	SubCampaignOwnerRoles = []string{
		RoleInfluencer,
		RoleAdmin,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
