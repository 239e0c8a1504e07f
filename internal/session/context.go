package session

// Context is the identity context the hosting client hands to the mini-app.
// Either shape, both, or neither may be present.
type Context struct {
	User       *User       `json:"user,omitempty"`
	Interactor *Interactor `json:"interactor,omitempty"`
	Client     *ClientInfo `json:"client,omitempty"`
}

// User is the primary shape. Several fields arrive under more than one key
// depending on the host, so the aliases are decoded side by side.
type User struct {
	FID      int64  `json:"fid,omitempty"`
	Username string `json:"username,omitempty"`

	DisplayName      string `json:"displayName,omitempty"`
	DisplayNameSnake string `json:"display_name,omitempty"`

	PfpURL    string `json:"pfpUrl,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`

	Verifications  []string `json:"verifications,omitempty"`
	CustodyAddress string   `json:"custodyAddress,omitempty"`

	CreatedAt      string `json:"created_at,omitempty"`
	CreatedAtCamel string `json:"createdAt,omitempty"`

	FollowerCount       int64 `json:"followerCount,omitempty"`
	FollowersCount      int64 `json:"followers_count,omitempty"`
	FollowersCountCamel int64 `json:"followersCount,omitempty"`

	IsProUser bool `json:"is_pro_user,omitempty"`
	ProStatus bool `json:"proStatus,omitempty"`
}

// Interactor is the alternate shape.
type Interactor struct {
	VerifiedAccounts []VerifiedAccount `json:"verified_accounts,omitempty"`
	CustodyAddress   string            `json:"custody_address,omitempty"`
}

type VerifiedAccount struct {
	DisplayName       string   `json:"display_name,omitempty"`
	AvatarURL         string   `json:"avatar_url,omitempty"`
	Username          string   `json:"username,omitempty"`
	CreatedAt         string   `json:"created_at,omitempty"`
	VerifiedAddresses []string `json:"verified_addresses,omitempty"`
	IsProUser         bool     `json:"is_pro_user,omitempty"`
}

type ClientInfo struct {
	Added bool `json:"added"`
}
