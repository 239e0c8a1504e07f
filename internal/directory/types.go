package directory

import (
	"encoding/json"
	"strings"
	"time"
)

// User is a directory record normalized from either casing the API uses.
type User struct {
	FID            int64
	Username       string
	DisplayName    string
	AvatarURL      string
	FollowerCount  int64
	FollowingCount int64
	Verifications  []string
	CustodyAddress string
	ActiveStatus   string
	CreatedAt      *time.Time // nil when the directory has no timestamp
}

// EthAddresses returns the 0x-prefixed verified addresses.
func (u *User) EthAddresses() []string {
	out := make([]string, 0, len(u.Verifications))
	for _, a := range u.Verifications {
		if strings.HasPrefix(a, "0x") {
			out = append(out, a)
		}
	}
	return out
}

// SolAddresses returns the verified addresses that are not EVM-style.
func (u *User) SolAddresses() []string {
	out := make([]string, 0, len(u.Verifications))
	for _, a := range u.Verifications {
		if !strings.HasPrefix(a, "0x") {
			out = append(out, a)
		}
	}
	return out
}

type apiUser struct {
	FID int64 `json:"fid"`

	Username         string `json:"username"`
	DisplayName      string `json:"display_name"`
	DisplayNameCamel string `json:"displayName"`

	PfpURL string          `json:"pfp_url"`
	Pfp    json.RawMessage `json:"pfp"`

	FollowerCount       int64 `json:"follower_count"`
	FollowerCountCamel  int64 `json:"followerCount"`
	FollowingCount      int64 `json:"following_count"`
	FollowingCountCamel int64 `json:"followingCount"`

	Verifications     []string `json:"verifications"`
	VerifiedAddresses struct {
		EthAddresses []string `json:"eth_addresses"`
		SolAddresses []string `json:"sol_addresses"`
	} `json:"verified_addresses"`

	CustodyAddress      string `json:"custody_address"`
	CustodyAddressCamel string `json:"custodyAddress"`

	ActiveStatus      string `json:"active_status"`
	ActiveStatusCamel string `json:"activeStatus"`

	CreatedAt string `json:"created_at"`
}

func (u *apiUser) toUser() *User {
	out := &User{
		FID:            u.FID,
		Username:       u.Username,
		DisplayName:    firstNonEmpty(u.DisplayName, u.DisplayNameCamel),
		AvatarURL:      firstNonEmpty(u.PfpURL, pfpURL(u.Pfp)),
		FollowerCount:  firstNonZero(u.FollowerCount, u.FollowerCountCamel),
		FollowingCount: firstNonZero(u.FollowingCount, u.FollowingCountCamel),
		CustodyAddress: firstNonEmpty(u.CustodyAddress, u.CustodyAddressCamel),
		ActiveStatus:   firstNonEmpty(u.ActiveStatus, u.ActiveStatusCamel),
	}

	if len(u.Verifications) > 0 {
		out.Verifications = u.Verifications
	} else {
		out.Verifications = append(append([]string{}, u.VerifiedAddresses.EthAddresses...), u.VerifiedAddresses.SolAddresses...)
	}

	if u.CreatedAt != "" {
		if t, err := time.Parse(time.RFC3339, u.CreatedAt); err == nil {
			out.CreatedAt = &t
		}
	}
	return out
}

// pfpURL accepts "pfp" as a bare string or as {"url": "..."}.
func pfpURL(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.URL
	}
	return ""
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstNonZero(vals ...int64) int64 {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}
	return 0
}
