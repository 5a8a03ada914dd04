package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/go-telegram/ui/keyboard/inline"

	"github.com/moshdev2213/letsbook/internal/domain"
)

func (tb *Bot) handleReservations(ctx context.Context, _ *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	sess := tb.session(ctx, chatID)
	if sess == nil {
		return
	}
	actionCtx := tb.beginAction(ctx, chatID)
	reservations, err := tb.booking.Reservations(actionCtx, sess)
	if err != nil {
		tb.reportError(ctx, chatID, err)
		return
	}
	if len(reservations) == 0 {
		tb.sendMessage(ctx, chatID, "You have no reservations yet. /trains to book a seat.")
		return
	}

	l := tb.chatLock(chatID)
	l.Lock()
	defer l.Unlock()
	f := tb.flowFor(chatID)
	f.reservations = make(map[string]*domain.Reservation, len(reservations))
	for _, r := range reservations {
		f.reservations[r.ID] = r

		status := "Active"
		if r.IsCancelled() {
			status = "Canceled"
		}
		text := fmt.Sprintf("Date: %s\nSeats: %d\nStatus: %s", r.Reserved, r.Seats, status)
		if r.IsCancelled() {
			tb.sendMessage(ctx, chatID, text)
			continue
		}
		kb := inline.New(tb.client, inline.NoDeleteAfterClick()).
			Row().
			Button("Edit", []byte("edit:"+r.ID), tb.onReservationAction).
			Button("Cancel", []byte("cancel:"+r.ID), tb.onReservationAction)
		_, err := tb.client.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        text,
			ReplyMarkup: kb,
		})
		if err != nil {
			tb.sendMessage(ctx, chatID, msgServerDown)
			return
		}
	}
}

func (tb *Bot) onReservationAction(ctx context.Context, _ *bot.Bot, mes models.MaybeInaccessibleMessage, data []byte) {
	chatID, reachable := callbackChat(mes)
	if !reachable {
		return
	}
	f := tb.flowFor(chatID)
	l := tb.chatLock(chatID)
	l.Lock()
	defer l.Unlock()

	action, id, ok := strings.Cut(string(data), ":")
	if !ok {
		tb.sendMessage(ctx, chatID, msgInvalidData)
		return
	}
	r, found := f.reservations[id]
	if !found {
		tb.sendMessage(ctx, chatID, "That reservation is gone. /reservations to refresh.")
		return
	}
	f.reservation = r

	switch action {
	case "edit":
		tb.sendButtonList(ctx, chatID, "New seat count?", seatChoices, tb.onEditSeats)
	case "cancel":
		kb := inline.New(tb.client, inline.NoDeleteAfterClick()).
			Row().
			Button("Yes, cancel it", []byte("yes"), tb.onCancelConfirm).
			Button("No, keep it", []byte("no"), tb.onCancelConfirm)
		_, err := tb.client.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        fmt.Sprintf("Cancel the reservation for %s?", r.Reserved),
			ReplyMarkup: kb,
		})
		if err != nil {
			tb.sendMessage(ctx, chatID, msgServerDown)
		}
	default:
		tb.sendMessage(ctx, chatID, msgInvalidData)
	}
}

func (tb *Bot) onEditSeats(ctx context.Context, _ *bot.Bot, mes models.MaybeInaccessibleMessage, data []byte) {
	chatID, ok := callbackChat(mes)
	if !ok {
		return
	}
	f := tb.flowFor(chatID)
	l := tb.chatLock(chatID)
	l.Lock()
	defer l.Unlock()
	if f.reservation == nil {
		tb.sendMessage(ctx, chatID, "Pick a reservation first with /reservations.")
		return
	}
	seats, err := strconv.Atoi(string(data))
	if err != nil || seats <= 0 {
		tb.sendMessage(ctx, chatID, msgInvalidData)
		return
	}
	sess := tb.session(ctx, chatID)
	if sess == nil {
		return
	}

	actionCtx := tb.beginAction(ctx, chatID)
	updated, err := tb.booking.Edit(actionCtx, sess, f.reservation, seats)
	if err != nil {
		if errors.Is(err, domain.ErrEditWindowClosed) {
			tb.sendMessage(ctx, chatID, msgEditWindowClosed)
			return
		}
		tb.reportError(ctx, chatID, err)
		return
	}
	f.reservation = nil
	tb.sendMessage(ctx, chatID, fmt.Sprintf("Reservation updated to %d seat(s).", updated.Seats))
}

func (tb *Bot) onCancelConfirm(ctx context.Context, _ *bot.Bot, mes models.MaybeInaccessibleMessage, data []byte) {
	chatID, ok := callbackChat(mes)
	if !ok {
		return
	}
	f := tb.flowFor(chatID)
	l := tb.chatLock(chatID)
	l.Lock()
	defer l.Unlock()
	if f.reservation == nil {
		tb.sendMessage(ctx, chatID, "Pick a reservation first with /reservations.")
		return
	}
	if string(data) != "yes" {
		f.reservation = nil
		tb.sendMessage(ctx, chatID, "Kept as is.")
		return
	}
	sess := tb.session(ctx, chatID)
	if sess == nil {
		return
	}

	actionCtx := tb.beginAction(ctx, chatID)
	if _, err := tb.booking.Cancel(actionCtx, sess, f.reservation); err != nil {
		tb.reportError(ctx, chatID, err)
		return
	}
	f.reservation = nil
	tb.sendMessage(ctx, chatID, "Reservation Canceled")
}
