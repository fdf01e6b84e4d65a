package entities

type UserRole string

const (
	RoleAdmin        UserRole = "Admin"
	RoleCollaborator UserRole = "Colaborador"
	RoleViewer       UserRole = "Visualizador"
)

// User is the directory projection the resolver filters against:
// tenant membership, role, and the contract ids the user may access.
type User struct {
	ID          string
	TenantID    string
	Name        string
	Email       string
	Role        UserRole
	IsActive    bool
	ContractIDs []string
}

// HasContractAccess reports whether the user holds an explicit grant for
// the contract. Admins bypass this check at resolution time.
func (u User) HasContractAccess(contractID string) bool {
	for _, candidate := range u.ContractIDs {
		if candidate == contractID {
			return true
		}
	}
	return false
}
