package services

import (
	"time"

	"github.com/based-profile/backend/internal/directory"
	"github.com/based-profile/backend/internal/models"
	"github.com/based-profile/backend/internal/session"
)

const (
	DefaultDisplayName = "User"
	DefaultAvatar      = "/default-avatar.png"
	DefaultUsername    = "user"
)

// MergeIdentity resolves each field independently: primary context shape,
// then alternate shape, then the directory record, then a literal default.
// Custody follows its own order: directory, interactor, primary user.
func MergeIdentity(n session.Normalized, dir *directory.User) models.MergedIdentity {
	sources := n.Sources
	if dir != nil {
		sources = append(append([]session.Identity{}, n.Sources...), fromDirectory(dir))
	}

	id := models.MergedIdentity{
		FID:             n.FID,
		DisplayName:     pickString(sources, func(i session.Identity) string { return i.DisplayName }, DefaultDisplayName),
		Avatar:          pickString(sources, func(i session.Identity) string { return i.AvatarURL }, DefaultAvatar),
		Username:        pickString(sources, func(i session.Identity) string { return i.Username }, DefaultUsername),
		CreatedAt:       pickString(sources, func(i session.Identity) string { return i.CreatedAt }, models.DateUnknown),
		FollowerCount:   pickCount(sources),
		ProStatus:       pickFlag(sources),
		CustodyAddress:  mergeCustody(n, dir),
		VerifiedWallets: pickAddresses(sources),
	}
	if id.FID == 0 && dir != nil {
		id.FID = dir.FID
	}
	return id
}

func fromDirectory(u *directory.User) session.Identity {
	return session.Identity{
		Source:         session.SourceDirectory,
		FID:            u.FID,
		Username:       u.Username,
		DisplayName:    u.DisplayName,
		AvatarURL:      u.AvatarURL,
		CreatedAt:      timestamp(u.CreatedAt),
		CustodyAddress: u.CustodyAddress,
		Verifications:  u.Verifications,
		FollowerCount:  u.FollowerCount,
	}
}

func mergeCustody(n session.Normalized, dir *directory.User) string {
	if dir != nil && dir.CustodyAddress != "" {
		return dir.CustodyAddress
	}
	return n.ContextCustody()
}

func pickString(sources []session.Identity, field func(session.Identity) string, fallback string) string {
	for _, s := range sources {
		if v := field(s); v != "" {
			return v
		}
	}
	return fallback
}

func pickCount(sources []session.Identity) int64 {
	for _, s := range sources {
		if s.FollowerCount > 0 {
			return s.FollowerCount
		}
	}
	return 0
}

func pickFlag(sources []session.Identity) bool {
	for _, s := range sources {
		if s.ProStatus {
			return true
		}
	}
	return false
}

func pickAddresses(sources []session.Identity) []string {
	for _, s := range sources {
		if len(s.Verifications) > 0 {
			return append([]string{}, s.Verifications...)
		}
	}
	return []string{}
}

func timestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// dateOrUnknown renders a directory timestamp, or DateUnknown when absent.
func dateOrUnknown(t *time.Time) string {
	if s := timestamp(t); s != "" {
		return s
	}
	return models.DateUnknown
}
