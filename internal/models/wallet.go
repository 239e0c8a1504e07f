package models

const (
	NetworkBase = "Base"

	// DateUnknown stands in when no source carries a date.
	DateUnknown = "unknown"
)

// WalletRecord describes one resolved wallet. Address is the natural key.
// HasSmartWallet, PointsReceived, TransactionCount, ReputationScore and
// CommunityName have no data source yet and carry neutral values.
type WalletRecord struct {
	Address              string  `json:"address"`
	Network              string  `json:"network"`
	FirstTransactionDate string  `json:"first_transaction_date"`
	HasSmartWallet       bool    `json:"has_smart_wallet"`
	PointsReceived       float64 `json:"points_received"`
	TransactionCount     int64   `json:"transaction_count"`
	CommunityName        *string `json:"community_name,omitempty"`
	IsCustody            bool    `json:"is_custody"`
	IsLinked             bool    `json:"is_linked"`
	ReputationScore      float64 `json:"reputation_score"` // 0..100
	CommunityRole        *string `json:"community_role,omitempty"`
}

// Role returns the community role or "" when absent.
func (w WalletRecord) Role() string {
	if w.CommunityRole == nil {
		return ""
	}
	return *w.CommunityRole
}

// DisplayAddress is the alias when one is known, else the shortened address.
func (w WalletRecord) DisplayAddress() string {
	alias := ""
	if w.CommunityName != nil {
		alias = *w.CommunityName
	}
	return FormatWalletAddress(w.Address, alias)
}

// FormatWalletAddress returns alias if set, otherwise the first and last
// five characters of address joined by "...".
func FormatWalletAddress(address, alias string) string {
	if alias != "" {
		return alias
	}
	if len(address) <= 10 {
		return address
	}
	return address[:5] + "..." + address[len(address)-5:]
}

func StrPtr(s string) *string {
	return &s
}
