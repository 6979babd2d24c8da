package domain

// Event type constants used for event bus subscriptions and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "pet.adopted")
const (
	// EventTypePetAdopted is published when a player adopts a pet
	EventTypePetAdopted = "pet.adopted"

	// EventTypePetLeveledUp is published once per level gained
	EventTypePetLeveledUp = "pet.leveled_up"

	// EventTypePetEvolved is published when a pet advances a stage
	EventTypePetEvolved = "pet.evolved"

	// EventTypeItemPurchased is published after a committed shop purchase
	EventTypeItemPurchased = "shop.item_purchased"

	// EventTypePetFed is published after a committed feeding
	EventTypePetFed = "pet.fed"

	// EventTypeExploreCompleted is published after an exploration settles
	EventTypeExploreCompleted = "explore.completed"

	// EventTypeDuelCompleted is published after both duel sides are settled
	EventTypeDuelCompleted = "duel.completed"
)

// RewardType names the stat an exploration event pays out
type RewardType string

const (
	RewardMood    RewardType = "mood"
	RewardSatiety RewardType = "satiety"
	RewardExp     RewardType = "exp"
	RewardMoney   RewardType = "money"
)

// RandomEvent is a rolled, non-battle exploration outcome
type RandomEvent struct {
	Description string     `json:"description"`
	RewardType  RewardType `json:"reward_type"`
	RewardValue int        `json:"reward_value"`
	MoneyGain   int        `json:"money_gain"`
}

// ExploreOutcome distinguishes the two exploration branches
type ExploreOutcome string

const (
	ExploreOutcomeEvent  ExploreOutcome = "event"
	ExploreOutcomeBattle ExploreOutcome = "battle"
)
