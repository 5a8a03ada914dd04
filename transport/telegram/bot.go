// Package telegram renders the booking workflow as a bot conversation.
// It validates nothing by itself beyond prompting: every rule lives in
// the usecases, this layer only collects input and shows results.
package telegram

import (
	"context"
	"sync"

	"github.com/go-telegram/bot"

	"github.com/moshdev2213/letsbook/internal/repository/badgerdb"
	"github.com/moshdev2213/letsbook/internal/usecase"
)

type Bot struct {
	client   *bot.Bot
	auth     *usecase.AuthUsecase
	booking  *usecase.BookingUsecase
	sessions *badgerdb.SessionStore

	mu      sync.Mutex
	flows   map[int64]*flow
	actions map[int64]context.CancelFunc
	locks   map[int64]*sync.Mutex
}

func NewBot(client *bot.Bot, auth *usecase.AuthUsecase, booking *usecase.BookingUsecase, sessions *badgerdb.SessionStore) *Bot {
	return &Bot{
		client:   client,
		auth:     auth,
		booking:  booking,
		sessions: sessions,
		flows:    make(map[int64]*flow),
		actions:  make(map[int64]context.CancelFunc),
		locks:    make(map[int64]*sync.Mutex),
	}
}

// AddClient attaches the bot client after construction. The default
// message handler needs *Bot before bot.New can run, so wiring happens
// in two steps.
func (tb *Bot) AddClient(client *bot.Bot) {
	tb.client = client
}

func (tb *Bot) Start(ctx context.Context) {
	tb.client.Start(ctx)
}

func (tb *Bot) RegisterHandlers() {
	tb.client.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, tb.handleStart)
	tb.client.RegisterHandler(bot.HandlerTypeMessageText, "/signin", bot.MatchTypeExact, tb.handleSignIn)
	tb.client.RegisterHandler(bot.HandlerTypeMessageText, "/signup", bot.MatchTypeExact, tb.handleSignUp)
	tb.client.RegisterHandler(bot.HandlerTypeMessageText, "/trains", bot.MatchTypeExact, tb.handleTrains)
	tb.client.RegisterHandler(bot.HandlerTypeMessageText, "/reservations", bot.MatchTypeExact, tb.handleReservations)
	tb.client.RegisterHandler(bot.HandlerTypeMessageText, "/profile", bot.MatchTypeExact, tb.handleProfile)
	tb.client.RegisterHandler(bot.HandlerTypeMessageText, "/editprofile", bot.MatchTypeExact, tb.handleEditProfile)
	tb.client.RegisterHandler(bot.HandlerTypeMessageText, "/deactivate", bot.MatchTypeExact, tb.handleDeactivate)
	tb.client.RegisterHandler(bot.HandlerTypeMessageText, "/logout", bot.MatchTypeExact, tb.handleLogout)
	tb.client.RegisterHandler(bot.HandlerTypeMessageText, "/abort", bot.MatchTypeExact, tb.handleAbort)
}

// chatLock returns the chat's update lock. The library runs every
// handler in its own goroutine, so updates from one chat must serialize
// before touching that chat's flow. Handlers take the lock after
// beginAction: cancelling the previous action first unblocks whatever
// round trip still holds the lock.
func (tb *Bot) chatLock(chatID int64) *sync.Mutex {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	l, ok := tb.locks[chatID]
	if !ok {
		l = &sync.Mutex{}
		tb.locks[chatID] = l
	}
	return l
}

// beginAction scopes one user-initiated action. Starting a new action
// cancels whatever round trip the previous one still had in flight, so
// navigating away abandons the old work instead of letting it race.
func (tb *Bot) beginAction(ctx context.Context, chatID int64) context.Context {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	if cancel, ok := tb.actions[chatID]; ok {
		cancel()
	}
	actionCtx, cancel := context.WithCancel(ctx)
	tb.actions[chatID] = cancel
	return actionCtx
}

func (tb *Bot) abortAction(chatID int64) {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	if cancel, ok := tb.actions[chatID]; ok {
		cancel()
		delete(tb.actions, chatID)
	}
}
