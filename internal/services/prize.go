package services

import (
	"fmt"
	"sort"

	"github.com/jarodreyes/prize-survey/internal/survey"
)

// PrizeService evaluates which tiers a response count has unlocked. It is
// pure: no persistence, recomputed on every read.
type PrizeService struct {
	tiers []survey.PrizeTier
}

func NewPrizeService() *PrizeService {
	return NewPrizeServiceWithTiers(survey.PrizeTiers)
}

func NewPrizeServiceWithTiers(tiers []survey.PrizeTier) *PrizeService {
	sorted := make([]survey.PrizeTier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Threshold < sorted[j].Threshold
	})
	return &PrizeService{tiers: sorted}
}

func (s *PrizeService) Tiers() []survey.PrizeTier {
	return s.tiers
}

type UnlockResult struct {
	Unlocked []survey.PrizeTier
	Message  string
}

// EvaluateUnlocks returns the tiers whose thresholds the count has met,
// ascending by threshold. "No responses yet" and "responses exist but below
// the first threshold" produce distinct messages.
func (s *PrizeService) EvaluateUnlocks(responseCount int) UnlockResult {
	if responseCount == 0 {
		return UnlockResult{
			Unlocked: []survey.PrizeTier{},
			Message:  "No responses yet - no prizes to assign!",
		}
	}

	unlocked := make([]survey.PrizeTier, 0, len(s.tiers))
	for _, tier := range s.tiers {
		if responseCount >= tier.Threshold {
			unlocked = append(unlocked, tier)
		}
	}

	if len(unlocked) == 0 {
		return UnlockResult{
			Unlocked: unlocked,
			Message: fmt.Sprintf("Need %d responses to unlock first prize. Currently have %d.",
				s.tiers[0].Threshold, responseCount),
		}
	}

	return UnlockResult{Unlocked: unlocked}
}
