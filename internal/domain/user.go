package domain

// Role is a user role tag. Membership checks are exact, never substring
// based: a role named "Gerente2" must not match "Gerente".
type Role string

const (
	RoleAdministrador Role = "Administrador"
	RoleGerente       Role = "Gerente"
	RoleFuncionario   Role = "Funcionario"
)

// RoleSet is an ordered set of role tags.
type RoleSet []Role

// Has reports whether the set contains exactly the given role.
func (rs RoleSet) Has(role Role) bool {
	for _, r := range rs {
		if r == role {
			return true
		}
	}
	return false
}

// IsEmpty reports whether no role tag is present. A user who can
// authenticate into a protected area must carry at least one.
func (rs RoleSet) IsEmpty() bool {
	return len(rs) == 0
}

// Add appends a role if not already present.
func (rs RoleSet) Add(role Role) RoleSet {
	if rs.Has(role) {
		return rs
	}
	return append(rs, role)
}

type User struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Roles        RoleSet `json:"roles"`
	Active       bool    `json:"active"`
	AvatarURL    string  `json:"avatarUrl"`
	PasswordHash string  `json:"-"`
}
