package domain

import (
	"sort"
	"time"
)

// Attribute is the elemental affinity of a species
type Attribute string

const (
	AttributeWater Attribute = "water"
	AttributeFire  Attribute = "fire"
	AttributeGrass Attribute = "grass"
)

// Stat bounds and adoption defaults
const (
	MinStat = 0
	MaxStat = 100

	StartingLevel  = 1
	StartingStage  = 1
	DefaultMood    = 100
	DefaultSatiety = 80
	DefaultMoney   = 50
)

// KeySeparator joins the owner and community ids in PetKey.String
const KeySeparator = ":"

// PetKey identifies a pet. One pet exists per (owner, community) pair.
type PetKey struct {
	OwnerID     string `json:"owner_id"`
	CommunityID string `json:"community_id"`
}

// NewPetKey builds a key from its parts
func NewPetKey(ownerID, communityID string) PetKey {
	return PetKey{OwnerID: ownerID, CommunityID: communityID}
}

func (k PetKey) String() string {
	return k.OwnerID + KeySeparator + k.CommunityID
}

// Less orders keys by owner, then community. Multi-key locks are always
// acquired in this order.
func (k PetKey) Less(other PetKey) bool {
	if k.OwnerID != other.OwnerID {
		return k.OwnerID < other.OwnerID
	}
	return k.CommunityID < other.CommunityID
}

// SortKeys returns a sorted copy of keys with duplicates removed
func SortKeys(keys []PetKey) []PetKey {
	out := make([]PetKey, 0, len(keys))
	seen := make(map[PetKey]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Pet is the persistent creature owned by a player in a community
type Pet struct {
	OwnerID     string `json:"owner_id"`
	CommunityID string `json:"community_id"`
	Name        string `json:"name"`
	SpeciesID   string `json:"species_id"`

	Level      int `json:"level"`
	Experience int `json:"experience"`
	Stage      int `json:"stage"`

	Mood    int `json:"mood"`
	Satiety int `json:"satiety"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Money   int `json:"money"`

	LastFedAt          time.Time `json:"last_fed_at"`
	LastExploredAt     time.Time `json:"last_explored_at"`
	LastDuelAt         time.Time `json:"last_duel_at"`
	LastDecayAppliedAt time.Time `json:"last_decay_applied_at"`
	CreatedAt          time.Time `json:"created_at"`
}

// Key returns the identity of the pet
func (p *Pet) Key() PetKey {
	return PetKey{OwnerID: p.OwnerID, CommunityID: p.CommunityID}
}

// Clone returns a shallow copy safe to mutate
func (p *Pet) Clone() *Pet {
	c := *p
	return &c
}

// ClampStat bounds a mood or satiety value to [MinStat, MaxStat]
func ClampStat(v int) int {
	if v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}

// InventoryEntry is a stack of one item in a pet's backpack
type InventoryEntry struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

// PetUpdate is a typed write intent. Nil fields are left unchanged; non-nil
// fields carry the final value to store.
type PetUpdate struct {
	Level      *int
	Experience *int
	Stage      *int
	Mood       *int
	Satiety    *int
	Attack     *int
	Defense    *int
	Money      *int

	LastFedAt          *time.Time
	LastExploredAt     *time.Time
	LastDuelAt         *time.Time
	LastDecayAppliedAt *time.Time
}

// IsEmpty reports whether the update changes nothing
func (u PetUpdate) IsEmpty() bool {
	return u.Level == nil && u.Experience == nil && u.Stage == nil &&
		u.Mood == nil && u.Satiety == nil && u.Attack == nil &&
		u.Defense == nil && u.Money == nil &&
		u.LastFedAt == nil && u.LastExploredAt == nil &&
		u.LastDuelAt == nil && u.LastDecayAppliedAt == nil
}

// Apply copies the set fields onto p
func (u PetUpdate) Apply(p *Pet) {
	setInt(&p.Level, u.Level)
	setInt(&p.Experience, u.Experience)
	setInt(&p.Stage, u.Stage)
	setInt(&p.Mood, u.Mood)
	setInt(&p.Satiety, u.Satiety)
	setInt(&p.Attack, u.Attack)
	setInt(&p.Defense, u.Defense)
	setInt(&p.Money, u.Money)
	setTime(&p.LastFedAt, u.LastFedAt)
	setTime(&p.LastExploredAt, u.LastExploredAt)
	setTime(&p.LastDuelAt, u.LastDuelAt)
	setTime(&p.LastDecayAppliedAt, u.LastDecayAppliedAt)
}

// Validate checks the invariants that must hold for any stored pet
func (p *Pet) Validate() error {
	switch {
	case p.Level < StartingLevel:
		return ErrInvalidLevel
	case p.Experience < 0:
		return ErrInvalidExperience
	case p.Stage < StartingStage:
		return ErrInvalidStage
	case p.Mood < MinStat || p.Mood > MaxStat, p.Satiety < MinStat || p.Satiety > MaxStat:
		return ErrStatOutOfRange
	case p.Money < 0:
		return ErrNegativeMoney
	}
	return nil
}

// DiffPet builds the update that turns before into after. Identity fields
// are never part of an update.
func DiffPet(before, after *Pet) PetUpdate {
	var u PetUpdate
	u.Level = diffInt(before.Level, after.Level)
	u.Experience = diffInt(before.Experience, after.Experience)
	u.Stage = diffInt(before.Stage, after.Stage)
	u.Mood = diffInt(before.Mood, after.Mood)
	u.Satiety = diffInt(before.Satiety, after.Satiety)
	u.Attack = diffInt(before.Attack, after.Attack)
	u.Defense = diffInt(before.Defense, after.Defense)
	u.Money = diffInt(before.Money, after.Money)
	u.LastFedAt = diffTime(before.LastFedAt, after.LastFedAt)
	u.LastExploredAt = diffTime(before.LastExploredAt, after.LastExploredAt)
	u.LastDuelAt = diffTime(before.LastDuelAt, after.LastDuelAt)
	u.LastDecayAppliedAt = diffTime(before.LastDecayAppliedAt, after.LastDecayAppliedAt)
	return u
}

// Int returns a pointer to v, for building a PetUpdate
func Int(v int) *int {
	return &v
}

// Time returns a pointer to t, for building a PetUpdate
func Time(t time.Time) *time.Time {
	return &t
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setTime(dst *time.Time, src *time.Time) {
	if src != nil {
		*dst = *src
	}
}

func diffInt(before, after int) *int {
	if before == after {
		return nil
	}
	return Int(after)
}

func diffTime(before, after time.Time) *time.Time {
	if before.Equal(after) {
		return nil
	}
	return Time(after)
}
