package dto

import (
	"time"

	"github.com/based-profile/backend/internal/directory"
)

type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

type SuccessResponse struct {
	OK   bool `json:"ok"`
	Data any  `json:"data,omitempty"`
}

// DirectoryUserResponse is the normalized shape the proxy routes return.
type DirectoryUserResponse struct {
	ID             int64    `json:"id"`
	Handle         string   `json:"handle"`
	DisplayName    string   `json:"displayName"`
	Avatar         string   `json:"avatar"`
	FollowerCount  int64    `json:"followerCount"`
	FollowingCount int64    `json:"followingCount"`
	Verifications  []string `json:"verifications"`
	CustodyAddress string   `json:"custodyAddress"`
	ActiveStatus   string   `json:"activeStatus"`
	CreatedAt      string   `json:"createdAt"`
	EthAddresses   []string `json:"ethAddresses,omitempty"`
	SolAddresses   []string `json:"solAddresses,omitempty"`
}

// NewDirectoryUserResponse substitutes now for a missing creation time.
func NewDirectoryUserResponse(u *directory.User, now time.Time) DirectoryUserResponse {
	created := now
	if u.CreatedAt != nil {
		created = *u.CreatedAt
	}
	verifications := u.Verifications
	if verifications == nil {
		verifications = []string{}
	}
	return DirectoryUserResponse{
		ID:             u.FID,
		Handle:         u.Username,
		DisplayName:    u.DisplayName,
		Avatar:         u.AvatarURL,
		FollowerCount:  u.FollowerCount,
		FollowingCount: u.FollowingCount,
		Verifications:  verifications,
		CustodyAddress: u.CustodyAddress,
		ActiveStatus:   u.ActiveStatus,
		CreatedAt:      created.UTC().Format(time.RFC3339),
	}
}

type ConfigCheckResponse struct {
	APIKeyExists  bool   `json:"api_key_exists"`
	APIKeyLength  int    `json:"api_key_length"`
	APIKeyPreview string `json:"api_key_preview"`
}
