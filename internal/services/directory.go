package services

import (
	"context"

	"github.com/based-profile/backend/internal/directory"
)

// DirectoryLookup is the subset of the directory client the pipeline needs.
type DirectoryLookup interface {
	LookupByID(ctx context.Context, fid int64) (*directory.User, error)
	LookupByAddress(ctx context.Context, address string) (*directory.User, error)
}
