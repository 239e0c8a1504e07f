package scoring

import "github.com/based-profile/backend/internal/models"

// Community role constants, highest first.
const (
	RoleOwner       = "Owner"
	RoleAdmin       = "Admin"
	RoleModerator   = "Moderator"
	RoleContributor = "Contributor"
	RoleBuilder     = "Builder"
	RoleMember      = "Member"
	RoleCustody     = "Custody"
	RoleGuest       = "Guest"
	RoleNew         = "New"
	RoleNone        = "None"
)

// RoleRank is the total order over community roles.
var RoleRank = map[string]int{
	RoleOwner:       10,
	RoleAdmin:       9,
	RoleModerator:   8,
	RoleContributor: 7,
	RoleBuilder:     6,
	RoleMember:      5,
	RoleCustody:     4,
	RoleGuest:       3,
	RoleNew:         2,
	RoleNone:        1,
}

// IsKnownRole reports whether role belongs to the hierarchy.
func IsKnownRole(role string) bool {
	_, ok := RoleRank[role]
	return ok
}

// HighestCommunityRole scans wallets in order and returns the highest-ranked
// role. Member is the floor: roles ranked below it, absent roles and unknown
// labels never replace it. Ties keep the first wallet seen.
func HighestCommunityRole(wallets []models.WalletRecord) string {
	highest := RoleMember
	highestRank := RoleRank[RoleMember]

	for _, w := range wallets {
		rank, ok := RoleRank[w.Role()]
		if ok && rank > highestRank {
			highest = w.Role()
			highestRank = rank
		}
	}
	return highest
}
