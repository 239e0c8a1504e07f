package scoring

import "strings"

const starMark = "⭐"

// StarLevel is a reputation tier derived from follower count.
type StarLevel struct {
	Tier         int    `json:"tier"`
	MinFollowers int64  `json:"min_followers"`
	Name         string `json:"name"`
}

// Label renders the tier as its marks followed by its name.
func (s StarLevel) Label() string {
	return strings.Repeat(starMark, s.Tier) + " " + s.Name
}

// StarLevels lists the tiers in ascending threshold order.
var StarLevels = []StarLevel{
	{Tier: 1, MinFollowers: 0, Name: "Fresh Star"},
	{Tier: 2, MinFollowers: 100, Name: "Emerging Star"},
	{Tier: 3, MinFollowers: 500, Name: "New Star"},
	{Tier: 4, MinFollowers: 1000, Name: "Rising Star"},
	{Tier: 5, MinFollowers: 5000, Name: "Legendary Star"},
	{Tier: 6, MinFollowers: 10000, Name: "Ultra Star"},
	{Tier: 7, MinFollowers: 25000, Name: "Mega Star"},
	{Tier: 8, MinFollowers: 50000, Name: "Super Star"},
	{Tier: 9, MinFollowers: 100000, Name: "Star"},
}

// StarLevelFor returns the highest tier whose threshold is met. Negative
// counts fall into the baseline tier.
func StarLevelFor(followerCount int64) StarLevel {
	for i := len(StarLevels) - 1; i > 0; i-- {
		if followerCount >= StarLevels[i].MinFollowers {
			return StarLevels[i]
		}
	}
	return StarLevels[0]
}
