package entity

import (
	"strings"

	domainerrors "pawtrack/internal/domain/errors"
)

// ProviderRole is the role a user holds on a specific provider.
type ProviderRole string

const (
	ProviderRoleOwner     ProviderRole = "OWNER"
	ProviderRoleModerator ProviderRole = "MODERATOR"
)

var providerRoleRanks = map[ProviderRole]int{
	ProviderRoleOwner:     1,
	ProviderRoleModerator: 2,
}

// ParseProviderRole accepts a role name in any letter case.
func ParseProviderRole(token string) (ProviderRole, error) {
	r := ProviderRole(strings.ToUpper(strings.TrimSpace(token)))
	if _, ok := providerRoleRanks[r]; !ok {
		return "", domainerrors.ErrInvalidArgument.WithDetails("invalid provider role: " + token)
	}

	return r, nil
}

// Rank returns 1 for OWNER and 2 for MODERATOR.
func (r ProviderRole) Rank() int {
	if rank, ok := providerRoleRanks[r]; ok {
		return rank
	}

	return len(providerRoleRanks) + 1
}

// AtLeast reports whether r grants at least the privileges of other.
func (r ProviderRole) AtLeast(other ProviderRole) bool {
	return r.Rank() <= other.Rank()
}

// String returns the string representation of the ProviderRole.
func (r ProviderRole) String() string {
	return string(r)
}
