package entities

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Identity is the authenticated caller, resolved once at the request boundary
// and passed explicitly into every use case call.

type Identity struct {
	SubjectID string
	Email     string
	Username  string
	Roles     []string
}

func (i Identity) HasRole(role string) bool {
	for _, r := range i.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (i Identity) IsAdmin() bool {
	return i.HasRole(RoleAdmin)
}
