package services

import (
	"context"

	"github.com/based-profile/backend/internal/config"
	"github.com/based-profile/backend/internal/directory"
	"github.com/based-profile/backend/internal/events"
	"github.com/based-profile/backend/internal/models"
	"github.com/based-profile/backend/internal/scoring"
	"github.com/based-profile/backend/internal/session"
	"go.uber.org/zap"
)

// ProfileAssembler turns a session context into a resolved profile.
type ProfileAssembler interface {
	Assemble(ctx context.Context, sc *session.Context) *models.ResolvedProfile
}

type ProfileService struct {
	directory  DirectoryLookup
	reconciler *WalletReconciler
	publisher  events.Publisher
	channel    string
	log        *zap.Logger
}

func NewProfileService(
	directory DirectoryLookup,
	publisher events.Publisher,
	cfg *config.Config,
	log *zap.Logger,
) *ProfileService {
	return &ProfileService{
		directory:  directory,
		reconciler: NewWalletReconciler(directory, log),
		publisher:  publisher,
		channel:    cfg.EventsChannel,
		log:        log,
	}
}

// Assemble runs the full resolution. It has no failure mode: when every
// source is unavailable the profile is built from literal defaults.
func (s *ProfileService) Assemble(ctx context.Context, sc *session.Context) *models.ResolvedProfile {
	n := session.Normalize(sc)

	var dirUser *directory.User
	if n.FID != 0 {
		dirUser = s.lookupByID(ctx, n.FID)
	}

	identity := MergeIdentity(n, dirUser)
	wallets := s.reconciler.Reconcile(ctx, WalletCandidates{
		Directory:      dirUser,
		Addresses:      n.ContextAddresses(),
		CustodyAddress: n.ContextCustody(),
	})

	star := scoring.StarLevelFor(identity.FollowerCount)
	p := &models.ResolvedProfile{
		MergedIdentity: identity,
		HasUserContext: n.HasUserData(),
		Wallets:        wallets.Wallets,
		CustodyWallet:  wallets.Custody,
		StarTier:       star.Tier,
		StarLevel:      star.Label(),
	}
	p.CommunityRole = scoring.HighestCommunityRole(p.AllWallets())
	p.CompositeScore = scoring.CompositeScore(p)

	s.log.Debug("profile resolved",
		zap.Int64("fid", p.FID),
		zap.Int("wallets", len(p.Wallets)),
		zap.Bool("custody", p.CustodyWallet != nil),
		zap.Float64("score", p.CompositeScore),
	)

	if err := s.publisher.Publish(ctx, s.channel, events.NewProfileResolved(p)); err != nil {
		s.log.Warn("failed to publish profile event", zap.Error(err))
	}

	return p
}

func (s *ProfileService) lookupByID(ctx context.Context, fid int64) *directory.User {
	u, err := s.directory.LookupByID(ctx, fid)
	if err != nil {
		s.log.Warn("lookup by fid failed", zap.Int64("fid", fid), zap.Error(err))
		return nil
	}
	return u
}
