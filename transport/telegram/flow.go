package telegram

import "github.com/moshdev2213/letsbook/internal/domain"

// step tracks what the next free-text message from a chat means.
type step int

const (
	stepNone step = iota
	stepSignInEmail
	stepSignInPassword
	stepSignUpPhone
	stepSignUpEmail
	stepSignUpName
	stepSignUpNIC
	stepSignUpPassword
	stepScheduleLabel
	stepEditName
	stepEditPhone
	stepEditNIC
)

// flow is the in-memory scratchpad of one chat's current conversation.
// It never outlives the process; only the session itself is persisted.
// Fields are guarded by the chat lock, not by tb.mu.
type flow struct {
	step step

	email    string
	password string
	phone    string
	name     string
	nic      string

	trains        map[string]*domain.Train
	train         *domain.Train
	scheduleLabel string
	seats         int
	draft         *domain.Draft

	reservations map[string]*domain.Reservation
	reservation  *domain.Reservation
}

func (tb *Bot) flowFor(chatID int64) *flow {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	f, ok := tb.flows[chatID]
	if !ok {
		f = &flow{}
		tb.flows[chatID] = f
	}
	return f
}

func (tb *Bot) resetFlow(chatID int64) {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	delete(tb.flows, chatID)
}
