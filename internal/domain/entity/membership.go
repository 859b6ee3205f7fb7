package entity

import (
	"slices"
	"strings"

	domainerrors "pawtrack/internal/domain/errors"
)

// Membership is the listing tier of a provider.
type Membership string

const (
	MembershipPremium Membership = "PREMIUM"
	MembershipFree    Membership = "FREE"
)

// membershipRanks puts the better tier first.
var membershipRanks = map[Membership]int{
	MembershipPremium: 1,
	MembershipFree:    2,
}

// Memberships returns every tier in rank order.
func Memberships() []Membership {
	return []Membership{MembershipPremium, MembershipFree}
}

// ParseMembership accepts a tier name in any letter case.
func ParseMembership(token string) (Membership, error) {
	m := Membership(strings.ToUpper(strings.TrimSpace(token)))
	if !m.IsValid() {
		return "", domainerrors.ErrInvalidArgument.WithDetails("invalid membership: " + token)
	}

	return m, nil
}

// IsValid reports whether m is a known tier.
func (m Membership) IsValid() bool {
	_, ok := membershipRanks[m]

	return ok
}

// Rank returns 1 for PREMIUM and 2 for FREE. Unknown tiers sort last.
func (m Membership) Rank() int {
	if r, ok := membershipRanks[m]; ok {
		return r
	}

	return len(membershipRanks) + 1
}

// String returns the string representation of the Membership.
func (m Membership) String() string {
	return string(m)
}

// CompareMembership orders tiers by rank.
func CompareMembership(a, b Membership) int {
	return a.Rank() - b.Rank()
}

// SortByMembership stably sorts items by tier only, keeping the existing
// relative order between items of the same tier.
func SortByMembership[T any](items []T, membershipOf func(T) Membership) {
	slices.SortStableFunc(items, func(a, b T) int {
		return CompareMembership(membershipOf(a), membershipOf(b))
	})
}
