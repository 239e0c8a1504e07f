package models

// MergedIdentity is the single logical identity resolved from the session
// context and the directory.
type MergedIdentity struct {
	FID             int64    `json:"fid,omitempty"`
	DisplayName     string   `json:"display_name"`
	Avatar          string   `json:"avatar"`
	Username        string   `json:"username"`
	CreatedAt       string   `json:"created_at"`
	FollowerCount   int64    `json:"follower_count"`
	ProStatus       bool     `json:"pro_status"`
	CustodyAddress  string   `json:"custody_address"`
	VerifiedWallets []string `json:"verified_wallets"`
}

// ResolvedProfile is built once per session context and never mutated
// afterwards; readers must treat it as immutable.
type ResolvedProfile struct {
	MergedIdentity

	HasUserContext bool           `json:"has_user_context"`
	Wallets        []WalletRecord `json:"wallets"`
	CustodyWallet  *WalletRecord  `json:"custody_wallet"`

	StarTier       int     `json:"star_tier"`
	StarLevel      string  `json:"star_level"`
	CommunityRole  string  `json:"community_role"`
	CompositeScore float64 `json:"composite_score"`
}

// AllWallets returns the ordinary wallets followed by the custody wallet.
func (p *ResolvedProfile) AllWallets() []WalletRecord {
	all := make([]WalletRecord, 0, len(p.Wallets)+1)
	all = append(all, p.Wallets...)
	if p.CustodyWallet != nil {
		all = append(all, *p.CustodyWallet)
	}
	return all
}
