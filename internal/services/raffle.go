package services

import (
	"errors"
	"fmt"
	"math/rand"

	"gorm.io/gorm"

	"github.com/jarodreyes/prize-survey/internal/models"
	"github.com/jarodreyes/prize-survey/internal/survey"
)

type Winner struct {
	PrizeID       string `json:"prizeId"`
	PrizeName     string `json:"prizeName"`
	PrizeImage    string `json:"prizeImage"`
	WinnerName    string `json:"winnerName"`
	WinnerInitial string `json:"winnerInitial"`
	WinnerEmail   string `json:"winnerEmail"`
}

type UnlockedPrize struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Threshold int    `json:"threshold"`
	Image     string `json:"image"`
}

type RaffleResult struct {
	SessionID      string          `json:"sessionId"`
	ResponseCount  int             `json:"responseCount"`
	Winners        []Winner        `json:"winners"`
	UnlockedPrizes []UnlockedPrize `json:"unlockedPrizes"`
	Message        string          `json:"message"`
}

type RaffleService struct {
	db     *gorm.DB
	prizes *PrizeService
}

func NewRaffleService(db *gorm.DB, prizes *PrizeService) *RaffleService {
	return &RaffleService{db: db, prizes: prizes}
}

// Draw recomputes a winner assignment from the committed state. Each call
// re-shuffles, so successive draws over the same participants may name
// different winners; within one draw a participant wins at most one prize
// and every unlocked tier gets at most one winner.
func (s *RaffleService) Draw(sessionID string) (*RaffleResult, error) {
	var session models.Session
	if err := s.db.Where("id = ?", sessionID).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	// Only participants with a committed response are eligible. The ledger
	// invariants make a response-less participant unreachable, but the join
	// excludes one if it ever exists.
	var eligible []models.Participant
	if err := s.db.Select("participants.*").
		Joins("JOIN responses ON responses.participant_id = participants.id").
		Where("participants.session_id = ?", sessionID).
		Find(&eligible).Error; err != nil {
		return nil, err
	}

	result := &RaffleResult{
		SessionID:      sessionID,
		ResponseCount:  len(eligible),
		Winners:        []Winner{},
		UnlockedPrizes: []UnlockedPrize{},
	}

	unlock := s.prizes.EvaluateUnlocks(len(eligible))
	if len(unlock.Unlocked) == 0 {
		result.Message = unlock.Message
		return result, nil
	}

	result.Winners = assignPrizes(eligible, unlock.Unlocked)
	for _, tier := range unlock.Unlocked {
		result.UnlockedPrizes = append(result.UnlockedPrizes, UnlockedPrize{
			ID:        tier.ID,
			Title:     tier.Title,
			Threshold: tier.Threshold,
			Image:     tier.Image,
		})
	}
	result.Message = fmt.Sprintf("%d prize%s assigned from %d response%s!",
		len(result.Winners), plural(len(result.Winners)),
		result.ResponseCount, plural(result.ResponseCount))

	return result, nil
}

// assignPrizes shuffles the eligible participants (Fisher-Yates via
// rand.Shuffle) and walks the unlocked tiers in ascending threshold order,
// handing each tier the next unassigned participant. Tiers beyond the
// participant count stay unwon.
func assignPrizes(participants []models.Participant, tiers []survey.PrizeTier) []Winner {
	shuffled := make([]models.Participant, len(participants))
	copy(shuffled, participants)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	winners := make([]Winner, 0, len(tiers))
	for i, tier := range tiers {
		if i >= len(shuffled) {
			break
		}
		p := shuffled[i]
		winners = append(winners, Winner{
			PrizeID:       tier.ID,
			PrizeName:     tier.Title,
			PrizeImage:    tier.Image,
			WinnerName:    survey.NameInitial(p.Name, ""),
			WinnerInitial: survey.Initial(p.Name),
			WinnerEmail:   p.Email,
		})
	}
	return winners
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
