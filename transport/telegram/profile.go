package telegram

import (
	"context"
	"fmt"
	"log"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/go-telegram/ui/keyboard/inline"

	"github.com/moshdev2213/letsbook/internal/validation"
)

func (tb *Bot) handleProfile(ctx context.Context, _ *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	sess := tb.session(ctx, chatID)
	if sess == nil {
		return
	}
	actionCtx := tb.beginAction(ctx, chatID)
	user, err := tb.auth.Profile(actionCtx, sess)
	if err != nil {
		tb.reportError(ctx, chatID, err)
		return
	}
	tb.sendMessage(ctx, chatID, fmt.Sprintf(
		"Name: %s\nEmail: %s\nTelephone: %s\nNIC: %s",
		user.Name, user.Email, user.Phone, user.NIC,
	))
}

func (tb *Bot) handleEditProfile(ctx context.Context, _ *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	if tb.session(ctx, chatID) == nil {
		return
	}
	l := tb.chatLock(chatID)
	l.Lock()
	defer l.Unlock()
	tb.resetFlow(chatID)
	tb.flowFor(chatID).step = stepEditName
	tb.sendMessage(ctx, chatID, "Enter your name.")
}

func (tb *Bot) onEditProfileStep(ctx context.Context, chatID int64, f *flow, text string) {
	switch f.step {
	case stepEditName:
		if !tb.ask(ctx, chatID, validation.FieldName, text) {
			return
		}
		f.name = text
		f.step = stepEditPhone
		tb.sendMessage(ctx, chatID, "Enter your telephone number.")
	case stepEditPhone:
		if !tb.ask(ctx, chatID, validation.FieldTelephone, text) {
			return
		}
		f.phone = text
		f.step = stepEditNIC
		tb.sendMessage(ctx, chatID, "Enter your NIC.")
	case stepEditNIC:
		if !tb.ask(ctx, chatID, validation.FieldNIC, text) {
			return
		}
		f.nic = text

		sess := tb.session(ctx, chatID)
		if sess == nil {
			return
		}
		actionCtx := tb.beginAction(ctx, chatID)
		_, err := tb.auth.UpdateProfile(actionCtx, sess, f.name, f.phone, f.nic)
		if err != nil {
			tb.reportError(ctx, chatID, err)
			return
		}
		tb.resetFlow(chatID)
		tb.sendMessage(ctx, chatID, "Profile updated.")
	}
}

func (tb *Bot) handleDeactivate(ctx context.Context, _ *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	if tb.session(ctx, chatID) == nil {
		return
	}
	kb := inline.New(tb.client, inline.NoDeleteAfterClick()).
		Row().
		Button("Yes, deactivate", []byte("yes"), tb.onDeactivateConfirm).
		Button("No, keep it", []byte("no"), tb.onDeactivateConfirm)
	_, err := tb.client.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "Deactivate your account? You will be signed out.",
		ReplyMarkup: kb,
	})
	if err != nil {
		tb.sendMessage(ctx, chatID, msgServerDown)
	}
}

func (tb *Bot) onDeactivateConfirm(ctx context.Context, _ *bot.Bot, mes models.MaybeInaccessibleMessage, data []byte) {
	chatID, ok := callbackChat(mes)
	if !ok {
		return
	}
	if string(data) != "yes" {
		tb.sendMessage(ctx, chatID, "Kept as is.")
		return
	}
	sess := tb.session(ctx, chatID)
	if sess == nil {
		return
	}
	actionCtx := tb.beginAction(ctx, chatID)
	if err := tb.auth.Deactivate(actionCtx, sess); err != nil {
		tb.reportError(ctx, chatID, err)
		return
	}
	if err := tb.sessions.Delete(chatID); err != nil {
		log.Println("delete session:", err)
	}
	tb.resetFlow(chatID)
	tb.sendMessage(ctx, chatID, "Account deactivated. /signup to start over.")
}
