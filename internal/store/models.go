package store

import (
	"errors"

	"slotsplanet/api/internal/ranking"
)

// ErrNotFound is returned by single-entity operations when the id does
// not exist in the backing collection.
var ErrNotFound = errors.New("not found")

// Bonus holds the welcome-offer terms shown on a casino card.
type Bonus struct {
	Percentage   string `json:"percentage"`
	MaxAmount    string `json:"maxAmount"`
	PromoCode    string `json:"promoCode"`
	Wager        string `json:"wager"`
	FreeSpins    string `json:"freeSpins"`
	Verification string `json:"verification"`
}

// Features holds the feature flags shown on a casino card.
type Features struct {
	QuickWithdrawals bool   `json:"quickWithdrawals"`
	WithdrawalText   string `json:"withdrawalText"`
}

// Casino is one entry in the ranked leaderboard. Rank is dense 1..N and
// RankClass is always derived from Rank, never set independently.
type Casino struct {
	ID         int      `json:"id"`
	Rank       int      `json:"rank"`
	RankClass  string   `json:"rankClass"`
	Name       string   `json:"name"`
	Logo       string   `json:"logo"`
	Rating     float64  `json:"rating"`
	Stars      int      `json:"stars"`
	URL        string   `json:"url"`
	IsNew      bool     `json:"isNew"`
	HasVPN     bool     `json:"hasVPN"`
	VPNTooltip string   `json:"vpnTooltip"`
	Bonus      Bonus    `json:"bonus"`
	Features   Features `json:"features"`
	ButtonText string   `json:"buttonText"`
}

func (c Casino) Key() int { return c.ID }

func (c Casino) AtPosition(pos int) Casino {
	c.Rank = pos
	c.RankClass = ranking.Class(pos)
	return c
}

// Billboard is one slide in the promotional rotation. Order is dense
// 1..N; only active slides are shown on the public site.
type Billboard struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	Description     string `json:"description"`
	ButtonText      string `json:"buttonText"`
	ButtonURL       string `json:"buttonUrl"`
	BackgroundImage string `json:"backgroundImage"`
	IsActive        bool   `json:"isActive"`
	Order           int    `json:"order"`
}

func (b Billboard) Key() int { return b.ID }

func (b Billboard) AtPosition(pos int) Billboard {
	b.Order = pos
	return b
}
