package session

// Source tags where an Identity was read from.
type Source int

const (
	SourcePrimary Source = iota + 1
	SourceAlternate
	SourceDirectory
)

func (s Source) String() string {
	switch s {
	case SourcePrimary:
		return "primary"
	case SourceAlternate:
		return "alternate"
	case SourceDirectory:
		return "directory"
	default:
		return "unknown"
	}
}

// Identity is the canonical record every source is folded into before
// field precedence is applied. Empty values mean "not provided".
type Identity struct {
	Source         Source
	FID            int64
	Username       string
	DisplayName    string
	AvatarURL      string
	CreatedAt      string
	CustodyAddress string
	Verifications  []string
	FollowerCount  int64
	ProStatus      bool
}

// Normalized is a session context with its shapes resolved once.
type Normalized struct {
	FID int64
	// Sources holds the context identities in precedence order.
	Sources []Identity
	// InteractorCustody is interactor.custody_address, kept apart because
	// custody precedence differs from the other fields.
	InteractorCustody string
}

// Normalize folds both context shapes into canonical identities.
// A nil context yields an empty result.
func Normalize(c *Context) Normalized {
	var n Normalized
	if c == nil {
		return n
	}

	if c.User != nil {
		u := c.User
		n.FID = u.FID
		n.Sources = append(n.Sources, Identity{
			Source:         SourcePrimary,
			FID:            u.FID,
			Username:       u.Username,
			DisplayName:    first(u.DisplayNameSnake, u.DisplayName),
			AvatarURL:      first(u.AvatarURL, u.PfpURL),
			CreatedAt:      first(u.CreatedAt, u.CreatedAtCamel),
			CustodyAddress: u.CustodyAddress,
			Verifications:  u.Verifications,
			FollowerCount:  firstCount(u.FollowerCount, u.FollowersCount, u.FollowersCountCamel),
			ProStatus:      u.IsProUser || u.ProStatus,
		})
	}

	if c.Interactor != nil {
		n.InteractorCustody = c.Interactor.CustodyAddress
		if len(c.Interactor.VerifiedAccounts) > 0 {
			a := c.Interactor.VerifiedAccounts[0]
			n.Sources = append(n.Sources, Identity{
				Source:        SourceAlternate,
				Username:      a.Username,
				DisplayName:   a.DisplayName,
				AvatarURL:     a.AvatarURL,
				CreatedAt:     a.CreatedAt,
				Verifications: a.VerifiedAddresses,
				ProStatus:     a.IsProUser,
			})
		}
	}

	return n
}

// HasUserData reports whether either identity shape was present.
func (n Normalized) HasUserData() bool {
	return len(n.Sources) > 0
}

// ContextAddresses returns the first non-empty verified address list
// in source order.
func (n Normalized) ContextAddresses() []string {
	for _, s := range n.Sources {
		if len(s.Verifications) > 0 {
			return s.Verifications
		}
	}
	return nil
}

// ContextCustody prefers interactor.custody_address over user.custodyAddress.
func (n Normalized) ContextCustody() string {
	if n.InteractorCustody != "" {
		return n.InteractorCustody
	}
	for _, s := range n.Sources {
		if s.Source == SourcePrimary && s.CustodyAddress != "" {
			return s.CustodyAddress
		}
	}
	return ""
}

func first(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstCount(vals ...int64) int64 {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return 0
}
