package telegram

import (
	"context"
	"errors"
	"log"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/go-telegram/ui/datepicker"
	"github.com/go-telegram/ui/keyboard/inline"

	"github.com/moshdev2213/letsbook/internal/domain"
	"github.com/moshdev2213/letsbook/internal/usecase"
	"github.com/moshdev2213/letsbook/internal/validation"
)

const (
	msgWelcome = "Welcome to LetsBook 🚆\n" +
		"/signin - sign in\n" +
		"/signup - create an account\n" +
		"/trains - browse trains and book a seat\n" +
		"/reservations - view, edit or cancel reservations\n" +
		"/profile - view your profile\n" +
		"/editprofile - change name, telephone or NIC\n" +
		"/deactivate - deactivate your account\n" +
		"/logout - sign out\n" +
		"/abort - drop whatever you were doing"
	msgSignInFirst       = "Sign in first with /signin."
	msgAlreadySignedIn   = "You are already signed in. /logout first to switch accounts."
	msgInvalidCreds      = "Invalid Credentials"
	msgServerDown        = "Server Error, try again later."
	msgInvalidData       = "Invalid data"
	msgSessionExpired    = "Your session expired. Sign in again with /signin."
	msgDateOutOfRange    = "Invalid selection. Allowed Only For A Month"
	msgEditWindowClosed  = "Date Exceeded 30 days"
	msgScheduleNotFound  = "No schedule matches that label. Enter the schedule again."
	msgScheduleAmbiguous = "That label matches more than one schedule. Enter a more exact one."
	msgAborted           = "Okay, dropped that. /start for the menu."
)

// callbackChat extracts the chat id behind an inline-keyboard callback.
// The message may have become inaccessible to the bot; then only the
// stripped-down variant carries the chat.
func callbackChat(mes models.MaybeInaccessibleMessage) (int64, bool) {
	switch {
	case mes.Message != nil:
		return mes.Message.Chat.ID, true
	case mes.InaccessibleMessage != nil:
		return mes.InaccessibleMessage.Chat.ID, true
	}
	return 0, false
}

func (tb *Bot) sendMessage(ctx context.Context, chatID int64, text string) {
	_, err := tb.client.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		log.Println("send message:", err)
	}
}

func (tb *Bot) sendButtonList(ctx context.Context, chatID int64, text string, names []string, onSelect inline.OnSelect) {
	kb := inline.New(tb.client, inline.NoDeleteAfterClick())
	for _, name := range names {
		kb.Row().Button(name, []byte(name), onSelect)
	}
	_, err := tb.client.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: kb,
	})
	if err != nil {
		log.Println("send button list:", err)
	}
}

func (tb *Bot) sendDatePicker(ctx context.Context, chatID int64, text string, onSelect datepicker.OnSelectHandler) {
	kb := datepicker.New(tb.client, onSelect)
	_, err := tb.client.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: kb,
	})
	if err != nil {
		log.Println("send date picker:", err)
	}
}

// reportError maps a usecase failure onto a chat message. A rejected
// token additionally kills the stored session: the traveler must sign in
// again.
func (tb *Bot) reportError(ctx context.Context, chatID int64, err error) {
	var vErr *validation.Error
	switch {
	case usecase.SessionDead(err):
		if dErr := tb.sessions.Delete(chatID); dErr != nil {
			log.Println("drop dead session:", dErr)
		}
		tb.resetFlow(chatID)
		tb.sendMessage(ctx, chatID, msgSessionExpired)
	case errors.Is(err, domain.ErrUnavailable):
		tb.sendMessage(ctx, chatID, msgServerDown)
	case errors.Is(err, domain.ErrSessionRequired):
		tb.sendMessage(ctx, chatID, msgSignInFirst)
	case errors.As(err, &vErr):
		for _, field := range []validation.Field{
			validation.FieldTelephone, validation.FieldEmail, validation.FieldName,
			validation.FieldNIC, validation.FieldPassword,
		} {
			if o, ok := vErr.Fields[field]; ok && !o.OK() {
				tb.sendMessage(ctx, chatID, o.Reason)
			}
		}
	default:
		tb.sendMessage(ctx, chatID, msgInvalidData)
	}
}

// session loads the chat's stored session, prompting for sign-in when
// there is none.
func (tb *Bot) session(ctx context.Context, chatID int64) *domain.Session {
	sess, err := tb.sessions.Get(chatID)
	if err != nil {
		log.Println("load session:", err)
		tb.sendMessage(ctx, chatID, msgServerDown)
		return nil
	}
	if sess == nil {
		tb.sendMessage(ctx, chatID, msgSignInFirst)
		return nil
	}
	return sess
}
