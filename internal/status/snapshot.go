// Package status builds read-only views of a pet and renders them for
// display through a pluggable Renderer.
package status

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/osse101/PetBot_Go/internal/catalog"
	"github.com/osse101/PetBot_Go/internal/cooldown"
	"github.com/osse101/PetBot_Go/internal/domain"
	"github.com/osse101/PetBot_Go/internal/progression"
)

// Snapshot is a decay-resolved, display-ready view of one pet
type Snapshot struct {
	Key         domain.PetKey    `json:"key"`
	Name        string           `json:"name"`
	SpeciesID   string           `json:"species_id"`
	StageName   string           `json:"stage_name"`
	Asset       string           `json:"asset,omitempty"`
	Attribute   domain.Attribute `json:"attribute"`
	Stage       int              `json:"stage"`
	FinalForm   bool             `json:"final_form"`
	EvolveLevel *int             `json:"evolve_level,omitempty"`

	Level        int `json:"level"`
	Experience   int `json:"experience"`
	ExpThreshold int `json:"exp_threshold"`
	Mood         int `json:"mood"`
	Satiety      int `json:"satiety"`
	Attack       int `json:"attack"`
	Defense      int `json:"defense"`
	Money        int `json:"money"`

	ExploreReadyIn time.Duration `json:"explore_ready_in"`
	DuelReadyIn    time.Duration `json:"duel_ready_in"`

	LastFedAt time.Time `json:"last_fed_at"`
	CreatedAt time.Time `json:"created_at"`
}

// NewSnapshot builds the view of p. A nil gate reports every action as ready.
func NewSnapshot(p *domain.Pet, species catalog.Species, gate *cooldown.Gate, now time.Time) *Snapshot {
	s := &Snapshot{
		Key:          p.Key(),
		Name:         p.Name,
		SpeciesID:    p.SpeciesID,
		StageName:    species.DisplayName(p.Stage),
		Attribute:    species.Attribute,
		Stage:        p.Stage,
		Level:        p.Level,
		Experience:   p.Experience,
		ExpThreshold: progression.ExpThreshold(p.Level),
		Mood:         p.Mood,
		Satiety:      p.Satiety,
		Attack:       p.Attack,
		Defense:      p.Defense,
		Money:        p.Money,
		LastFedAt:    p.LastFedAt,
		CreatedAt:    p.CreatedAt,
	}

	if st, ok := species.StageAt(p.Stage); ok {
		s.Asset = st.Asset
		s.FinalForm = st.IsFinal()
		if !st.IsFinal() {
			lvl := *st.EvolveLevel
			s.EvolveLevel = &lvl
		}
	}

	if gate != nil {
		s.ExploreReadyIn = gate.Remaining(p, cooldown.ActionExplore, now)
		s.DuelReadyIn = gate.Remaining(p, cooldown.ActionDuel, now)
	}
	return s
}

// ExpRatio is the fill fraction of the experience bar, in [0,1]
func (s *Snapshot) ExpRatio() float64 {
	if s.ExpThreshold <= 0 {
		return 0
	}
	r := float64(s.Experience) / float64(s.ExpThreshold)
	if r > 1 {
		return 1
	}
	return r
}

// Fingerprint identifies the displayed content. Two snapshots that would
// render identically share a fingerprint; cooldowns count at the second
// precision the card prints.
func (s *Snapshot) Fingerprint() string {
	raw := fmt.Sprintf("%s|%s|%s|%d|%d|%d|%d|%d|%d|%d|%d|%s|%s",
		s.Key.String(), s.Name, s.SpeciesID, s.Stage, s.Level, s.Experience,
		s.Mood, s.Satiety, s.Attack, s.Defense, s.Money,
		displayedWait(s.ExploreReadyIn), displayedWait(s.DuelReadyIn))
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// displayedWait is the cooldown as a card shows it
func displayedWait(left time.Duration) string {
	if left <= 0 {
		return "ready"
	}
	return left.Round(time.Second).String()
}
