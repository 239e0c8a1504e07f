package services

import (
	"context"
	"strings"

	"github.com/based-profile/backend/internal/directory"
	"github.com/based-profile/backend/internal/models"
	"github.com/based-profile/backend/internal/scoring"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// WalletCandidates are the inputs to wallet reconciliation.
type WalletCandidates struct {
	// Directory is the by-id lookup result, nil if there was none or it failed.
	Directory *directory.User
	// Addresses are the verified addresses carried by the session context.
	Addresses []string
	// CustodyAddress is the custody address carried by the session context.
	CustodyAddress string
}

type WalletSet struct {
	Wallets []models.WalletRecord
	Custody *models.WalletRecord
}

// WalletReconciler builds the annotated wallet list for one resolution.
type WalletReconciler struct {
	directory DirectoryLookup
	log       *zap.Logger
}

func NewWalletReconciler(directory DirectoryLookup, log *zap.Logger) *WalletReconciler {
	return &WalletReconciler{directory: directory, log: log}
}

// Reconcile resolves ordinary wallets and the custody wallet concurrently.
// Lookup failures are absorbed; it never returns an error.
func (r *WalletReconciler) Reconcile(ctx context.Context, c WalletCandidates) WalletSet {
	var set WalletSet
	var g errgroup.Group

	g.Go(func() error {
		set.Wallets = r.resolveWallets(ctx, c)
		return nil
	})
	g.Go(func() error {
		set.Custody = r.resolveCustody(ctx, c)
		return nil
	})
	_ = g.Wait()

	return set
}

func (r *WalletReconciler) resolveWallets(ctx context.Context, c WalletCandidates) []models.WalletRecord {
	// Addresses from the by-id record are authoritative; no per-address lookups.
	if c.Directory != nil && len(c.Directory.Verifications) > 0 {
		date := dateOrUnknown(c.Directory.CreatedAt)
		addrs := dedupeAddresses(c.Directory.Verifications)
		out := make([]models.WalletRecord, 0, len(addrs))
		for _, addr := range addrs {
			out = append(out, linkedWallet(addr, date))
		}
		return out
	}

	addrs := dedupeAddresses(c.Addresses)
	if len(addrs) == 0 {
		return []models.WalletRecord{}
	}

	results := make([]*models.WalletRecord, len(addrs))
	var g errgroup.Group
	for i, addr := range addrs {
		g.Go(func() error {
			if u := r.lookupAddress(ctx, addr, "wallet"); u != nil {
				w := linkedWallet(addr, dateOrUnknown(u.CreatedAt))
				results[i] = &w
			}
			return nil
		})
	}
	_ = g.Wait()

	out := make([]models.WalletRecord, 0, len(results))
	for _, w := range results {
		if w != nil {
			out = append(out, *w)
		}
	}
	return out
}

func (r *WalletReconciler) resolveCustody(ctx context.Context, c WalletCandidates) *models.WalletRecord {
	if c.Directory != nil && c.Directory.CustodyAddress != "" {
		w := custodyWallet(c.Directory.CustodyAddress, dateOrUnknown(c.Directory.CreatedAt))
		return &w
	}

	if c.CustodyAddress == "" {
		return nil
	}
	u := r.lookupAddress(ctx, c.CustodyAddress, "custody")
	if u == nil {
		return nil
	}
	w := custodyWallet(c.CustodyAddress, dateOrUnknown(u.CreatedAt))
	return &w
}

// lookupAddress returns nil on any failure.
func (r *WalletReconciler) lookupAddress(ctx context.Context, address, kind string) *directory.User {
	u, err := r.directory.LookupByAddress(ctx, address)
	if err != nil {
		r.log.Warn("address lookup failed",
			zap.String("kind", kind),
			zap.String("address", address),
			zap.Error(err),
		)
		return nil
	}
	return u
}

func linkedWallet(address, firstTx string) models.WalletRecord {
	return models.WalletRecord{
		Address:              address,
		Network:              models.NetworkBase,
		FirstTransactionDate: firstTx,
		IsLinked:             true,
		CommunityRole:        models.StrPtr(scoring.RoleMember),
	}
}

func custodyWallet(address, firstTx string) models.WalletRecord {
	w := linkedWallet(address, firstTx)
	w.IsCustody = true
	w.CommunityRole = models.StrPtr(scoring.RoleCustody)
	return w
}

// dedupeAddresses keeps the first occurrence of each address. EVM addresses
// compare case-insensitively, others exactly.
func dedupeAddresses(addrs []string) []string {
	seen := make(map[string]struct{}, len(addrs))
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		key := a
		if strings.HasPrefix(strings.ToLower(a), "0x") {
			key = strings.ToLower(a)
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, a)
	}
	return out
}
