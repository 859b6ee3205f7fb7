// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the system-wide role of a user.
type Role string

const (
	// RoleAdmin can manage every provider, including membership tiers.
	RoleAdmin Role = "admin"
	// RoleModerator reviews provider content.
	RoleModerator Role = "moderator"
	// RoleUser indicates a regular user role.
	RoleUser Role = "user"
)

var roleRanks = map[Role]int{
	RoleAdmin:     1,
	RoleModerator: 2,
	RoleUser:      3,
}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	_, ok := roleRanks[r]

	return ok
}

// Satisfies reports whether r is at least as privileged as required.
func (r Role) Satisfies(required Role) bool {
	have, ok := roleRanks[r]
	if !ok {
		return false
	}
	want, ok := roleRanks[required]
	if !ok {
		return false
	}

	return have <= want
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Satisfies reports whether any role in rs satisfies required.
func (rs Roles) Satisfies(required Role) bool {
	return slices.ContainsFunc(rs, func(r Role) bool {
		return r.Satisfies(required)
	})
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
