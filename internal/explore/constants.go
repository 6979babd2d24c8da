package explore

// Branch and reward tuning for a walk
const (
	EventChance = 0.7

	NPCLevelSpread = 1
	NPCSatiety     = 100
	NPCNamePrefix  = "Wild "

	WinExpPerLevel = 5
	WinExpBonusMin = 1
	WinExpBonusMax = 5
	WinMoneyMin    = 5
	WinMoneyMax    = 15
	LossExp        = 1

	PetNamePlaceholder = "{pet_name}"
)

const (
	ErrMsgNoEvents      = "event library is empty"
	ErrMsgUnknownReward = "unknown reward type %q"
)

const (
	LogMsgExploreCalled  = "Explore called"
	LogMsgExploreSettled = "Exploration settled"
	LogMsgEventFailed    = "Event library failed, walk yields nothing"
	LogMsgExploreFailed  = "Failed to commit exploration"
)
