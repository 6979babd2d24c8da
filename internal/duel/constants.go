package duel

// Duel rewards
const (
	WinnerBaseExp     = 10
	WinnerExpPerLevel = 2
	WinnerMoney       = 20
	LoserBaseExp      = 5
)

// LevelUpSource tags level-up events raised by duels
const LevelUpSource = "duel"

const (
	ErrMsgMissingOpponent = "opponent owner id is required: %w"
	ErrMsgChallengerFmt   = "challenger: %w"
	ErrMsgOpponentFmt     = "opponent: %w"
	ErrMsgSpeciesFmt      = "species %q: %w"
)

const (
	LogMsgDuelCalled  = "Duel called"
	LogMsgDuelSettled = "Duel settled"
	LogMsgDuelFailed  = "Failed to commit duel"
)
