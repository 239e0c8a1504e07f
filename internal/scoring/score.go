package scoring

import "github.com/based-profile/backend/internal/models"

const (
	proBonus         = 20.0
	perWalletBonus   = 15.0
	perTxBonus       = 2.0
	pointsMultiplier = 0.1

	MinScore = 0.0
	MaxScore = 100.0
)

// CompositeScore combines verification status and activity of the ordinary
// wallets into a value clamped to [MinScore, MaxScore]. The custody wallet
// does not count.
func CompositeScore(p *models.ResolvedProfile) float64 {
	if p == nil {
		return MinScore
	}

	score := 0.0
	if p.ProStatus {
		score += proBonus
	}
	score += float64(len(p.Wallets)) * perWalletBonus

	var points float64
	for _, w := range p.Wallets {
		score += float64(w.TransactionCount) * perTxBonus
		points += w.PointsReceived
	}
	score += points * pointsMultiplier

	return clamp(score, MinScore, MaxScore)
}

func clamp(v, lo, hi float64) float64 {
	if v != v { // NaN
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
