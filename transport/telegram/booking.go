package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/go-telegram/ui/keyboard/inline"

	"github.com/moshdev2213/letsbook/internal/domain"
)

// checkoutTotal is what the backend charges per booking. Pricing is not
// part of the record, the backend applies it on its own.
const checkoutTotal = "Rs 20000"

var seatChoices = []string{"1", "2", "3", "4", "5"}

func (tb *Bot) handleTrains(ctx context.Context, _ *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	sess := tb.session(ctx, chatID)
	if sess == nil {
		return
	}
	actionCtx := tb.beginAction(ctx, chatID)
	trains, err := tb.booking.Trains(actionCtx, sess)
	if err != nil {
		tb.reportError(ctx, chatID, err)
		return
	}
	if len(trains) == 0 {
		tb.sendMessage(ctx, chatID, "No trains are running right now.")
		return
	}
	l := tb.chatLock(chatID)
	l.Lock()
	defer l.Unlock()
	tb.resetFlow(chatID)
	f := tb.flowFor(chatID)
	f.trains = make(map[string]*domain.Train, len(trains))

	kb := inline.New(tb.client, inline.NoDeleteAfterClick())
	for _, t := range trains {
		f.trains[t.ID] = t
		label := fmt.Sprintf("%s (%s) %s - %s", t.Name, t.Type, t.FromStation, t.ToStation)
		kb.Row().Button(label, []byte(t.ID), tb.onTrainSelected)
	}
	_, err = tb.client.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "Pick a train.",
		ReplyMarkup: kb,
	})
	if err != nil {
		tb.sendMessage(ctx, chatID, msgServerDown)
	}
}

func (tb *Bot) onTrainSelected(ctx context.Context, _ *bot.Bot, mes models.MaybeInaccessibleMessage, data []byte) {
	chatID, ok := callbackChat(mes)
	if !ok {
		return
	}
	f := tb.flowFor(chatID)
	l := tb.chatLock(chatID)
	l.Lock()
	defer l.Unlock()
	train, ok := f.trains[string(data)]
	if !ok {
		tb.sendMessage(ctx, chatID, "That train is no longer offered. /trains to start over.")
		return
	}
	f.train = train
	f.step = stepScheduleLabel
	tb.sendMessage(ctx, chatID, "Enter the schedule for "+train.Name+".")
}

func (tb *Bot) onScheduleLabel(ctx context.Context, chatID int64, f *flow, text string) {
	if f.train == nil {
		tb.sendMessage(ctx, chatID, "Pick a train first with /trains.")
		return
	}
	f.scheduleLabel = text
	f.step = stepNone
	tb.sendButtonList(ctx, chatID, "How many seats?", seatChoices, tb.onSeatSelected)
}

func (tb *Bot) onSeatSelected(ctx context.Context, _ *bot.Bot, mes models.MaybeInaccessibleMessage, data []byte) {
	chatID, ok := callbackChat(mes)
	if !ok {
		return
	}
	f := tb.flowFor(chatID)
	l := tb.chatLock(chatID)
	l.Lock()
	defer l.Unlock()
	seats, err := strconv.Atoi(string(data))
	if err != nil || seats <= 0 {
		tb.sendMessage(ctx, chatID, msgInvalidData)
		return
	}
	f.seats = seats
	tb.sendDatePicker(ctx, chatID, "Pick a travel date.", tb.onDateSelected)
}

func (tb *Bot) onDateSelected(ctx context.Context, _ *bot.Bot, mes models.MaybeInaccessibleMessage, date time.Time) {
	chatID, ok := callbackChat(mes)
	if !ok {
		return
	}
	f := tb.flowFor(chatID)
	sess := tb.session(ctx, chatID)
	if sess == nil {
		return
	}
	l := tb.chatLock(chatID)
	l.Lock()
	defer l.Unlock()
	if f.train == nil {
		tb.sendMessage(ctx, chatID, "Pick a train first with /trains.")
		return
	}

	actionCtx := tb.beginAction(ctx, chatID)
	draft, err := tb.booking.BuildDraft(actionCtx, sess, f.train, f.scheduleLabel, f.seats, date)
	if err != nil {
		var ambiguous *domain.AmbiguousScheduleError
		switch {
		case errors.Is(err, domain.ErrDateOutOfRange):
			tb.sendMessage(ctx, chatID, msgDateOutOfRange)
			tb.sendDatePicker(ctx, chatID, "Pick a travel date.", tb.onDateSelected)
		case errors.Is(err, domain.ErrScheduleNotFound):
			f.step = stepScheduleLabel
			tb.sendMessage(ctx, chatID, msgScheduleNotFound)
		case errors.As(err, &ambiguous):
			f.step = stepScheduleLabel
			tb.sendMessage(ctx, chatID, msgScheduleAmbiguous)
		default:
			tb.reportError(ctx, chatID, err)
		}
		return
	}
	f.draft = draft

	summary := fmt.Sprintf(
		"Checkout\nTrain: %s (%s)\nRoute: %s - %s\nSeats: %d\nDate: %s\nTotal: %s",
		f.train.Name, f.train.Type, f.train.FromStation, f.train.ToStation,
		draft.Seats, draft.Reserved, checkoutTotal,
	)
	kb := inline.New(tb.client, inline.NoDeleteAfterClick()).
		Row().
		Button("Confirm", []byte("confirm"), tb.onCheckout).
		Button("Back", []byte("back"), tb.onCheckout)
	_, err = tb.client.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        summary,
		ReplyMarkup: kb,
	})
	if err != nil {
		tb.sendMessage(ctx, chatID, msgServerDown)
	}
}

func (tb *Bot) onCheckout(ctx context.Context, _ *bot.Bot, mes models.MaybeInaccessibleMessage, data []byte) {
	chatID, ok := callbackChat(mes)
	if !ok {
		return
	}
	f := tb.flowFor(chatID)
	l := tb.chatLock(chatID)
	l.Lock()
	defer l.Unlock()
	if f.draft == nil {
		tb.sendMessage(ctx, chatID, "Nothing to confirm. /trains to book a seat.")
		return
	}
	if string(data) == "back" {
		f.draft = nil
		tb.sendDatePicker(ctx, chatID, "Pick a travel date.", tb.onDateSelected)
		return
	}
	sess := tb.session(ctx, chatID)
	if sess == nil {
		return
	}

	draft := f.draft
	f.draft = nil // the draft is spent either way
	actionCtx := tb.beginAction(ctx, chatID)
	r, err := tb.booking.Submit(actionCtx, sess, draft)
	if err != nil {
		tb.reportError(ctx, chatID, err)
		return
	}
	tb.resetFlow(chatID)
	tb.sendMessage(ctx, chatID, fmt.Sprintf(
		"Reservation confirmed for %s, %d seat(s). Thank you for booking with us.",
		r.Reserved, r.Seats,
	))
}
