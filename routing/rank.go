package routing

import (
	"sort"

	"github.com/accessnav/go-transit/scoring"
	. "github.com/accessnav/go-transit/util"
)

//*******************************************
// ranking
//*******************************************

// RankRoutes orders candidate labels by profile-weighted utility,
// lowest score first. Every criterion is normalized into [0, 1] before
// weighting; ties keep their incoming order, which makes ranking an
// already-ranked list a no-op.
func RankRoutes(routes List[Label], disability string) List[Label] {
	if routes.Length() == 0 {
		return routes
	}
	weights := scoring.GetANPWeights(scoring.DisabilityFromString(disability))

	ranked := NewList[Label](routes.Length())
	ranked = append(ranked, routes...)
	for i := range ranked {
		ranked[i].ScoreCache = weighted_score(&ranked[i], weights)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ScoreCache < ranked[j].ScoreCache
	})
	return ranked
}

func weighted_score(label *Label, weights scoring.ANPWeights) float64 {
	norm_time := label.ArrivalTime / 120.0
	if norm_time > 1.0 {
		norm_time = 1.0
	}
	norm_transfers := float64(label.Transfers) / 4.0
	if norm_transfers > 1.0 {
		norm_transfers = 1.0
	}
	norm_difficulty := label.MaxTransferDifficulty
	norm_convenience := label.AvgConvenience()
	if norm_convenience > 1.0 {
		norm_convenience = 1.0
	}
	norm_congestion := label.AvgCongestion()
	if norm_congestion > 1.0 {
		norm_congestion = 1.0
	}

	return weights.TravelTime*norm_time +
		weights.Transfers*norm_transfers +
		weights.TransferDifficulty*norm_difficulty +
		weights.Convenience*(1.0-norm_convenience) +
		weights.Congestion*norm_congestion
}
