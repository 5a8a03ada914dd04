package telegram

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/moshdev2213/letsbook/internal/domain"
	"github.com/moshdev2213/letsbook/internal/validation"
)

func (tb *Bot) handleStart(ctx context.Context, _ *bot.Bot, update *models.Update) {
	tb.sendMessage(ctx, update.Message.Chat.ID, msgWelcome)
}

func (tb *Bot) handleAbort(ctx context.Context, _ *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	tb.abortAction(chatID)
	tb.resetFlow(chatID)
	tb.sendMessage(ctx, chatID, msgAborted)
}

func (tb *Bot) handleSignIn(ctx context.Context, _ *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	sess, err := tb.sessions.Get(chatID)
	if err != nil {
		log.Println("load session:", err)
	}
	if sess != nil {
		tb.sendMessage(ctx, chatID, msgAlreadySignedIn)
		return
	}
	l := tb.chatLock(chatID)
	l.Lock()
	defer l.Unlock()
	tb.resetFlow(chatID)
	tb.flowFor(chatID).step = stepSignInEmail
	tb.sendMessage(ctx, chatID, "Enter your email.")
}

func (tb *Bot) handleSignUp(ctx context.Context, _ *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	l := tb.chatLock(chatID)
	l.Lock()
	defer l.Unlock()
	tb.resetFlow(chatID)
	tb.flowFor(chatID).step = stepSignUpPhone
	tb.sendMessage(ctx, chatID, "Enter your telephone number.")
}

func (tb *Bot) handleLogout(ctx context.Context, _ *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	tb.abortAction(chatID)
	tb.resetFlow(chatID)
	if err := tb.sessions.Delete(chatID); err != nil {
		log.Println("delete session:", err)
		tb.sendMessage(ctx, chatID, msgServerDown)
		return
	}
	tb.sendMessage(ctx, chatID, "Signed out. /signin to come back.")
}

// OnMessage handles every non-command message: the answer to whatever
// the current flow step asked for.
func (tb *Bot) OnMessage(ctx context.Context, _ *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	text := strings.TrimSpace(update.Message.Text)
	f := tb.flowFor(chatID)
	l := tb.chatLock(chatID)
	l.Lock()
	defer l.Unlock()

	switch f.step {
	case stepSignInEmail, stepSignInPassword:
		tb.onSignInStep(ctx, chatID, f, text)
	case stepSignUpPhone, stepSignUpEmail, stepSignUpName, stepSignUpNIC, stepSignUpPassword:
		tb.onSignUpStep(ctx, chatID, f, text)
	case stepScheduleLabel:
		tb.onScheduleLabel(ctx, chatID, f, text)
	case stepEditName, stepEditPhone, stepEditNIC:
		tb.onEditProfileStep(ctx, chatID, f, text)
	default:
		tb.sendMessage(ctx, chatID, msgWelcome)
	}
}

// ask validates one answer before it is kept; on failure the reason is
// shown and the step repeats.
func (tb *Bot) ask(ctx context.Context, chatID int64, field validation.Field, raw string) bool {
	if o := validation.Check(field, raw); !o.OK() {
		tb.sendMessage(ctx, chatID, o.Reason)
		return false
	}
	return true
}

func (tb *Bot) onSignInStep(ctx context.Context, chatID int64, f *flow, text string) {
	switch f.step {
	case stepSignInEmail:
		if !tb.ask(ctx, chatID, validation.FieldEmail, text) {
			return
		}
		f.email = text
		f.step = stepSignInPassword
		tb.sendMessage(ctx, chatID, "Enter your password.")
	case stepSignInPassword:
		if !tb.ask(ctx, chatID, validation.FieldPassword, text) {
			return
		}
		f.password = text

		actionCtx := tb.beginAction(ctx, chatID)
		sess, err := tb.auth.SignIn(actionCtx, f.email, f.password)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				tb.resetFlow(chatID)
				tb.sendMessage(ctx, chatID, msgInvalidCreds)
				return
			}
			tb.reportError(ctx, chatID, err)
			return
		}
		if err := tb.sessions.Save(chatID, sess); err != nil {
			log.Println("save session:", err)
			tb.sendMessage(ctx, chatID, msgServerDown)
			return
		}
		tb.resetFlow(chatID)
		tb.sendMessage(ctx, chatID, "Signed in as "+sess.User.Email+". /trains to book a seat.")
	}
}

func (tb *Bot) onSignUpStep(ctx context.Context, chatID int64, f *flow, text string) {
	switch f.step {
	case stepSignUpPhone:
		if !tb.ask(ctx, chatID, validation.FieldTelephone, text) {
			return
		}
		f.phone = text
		f.step = stepSignUpEmail
		tb.sendMessage(ctx, chatID, "Enter your email.")
	case stepSignUpEmail:
		if !tb.ask(ctx, chatID, validation.FieldEmail, text) {
			return
		}
		f.email = text
		f.step = stepSignUpName
		tb.sendMessage(ctx, chatID, "Enter your name.")
	case stepSignUpName:
		if !tb.ask(ctx, chatID, validation.FieldName, text) {
			return
		}
		f.name = text
		f.step = stepSignUpNIC
		tb.sendMessage(ctx, chatID, "Enter your NIC.")
	case stepSignUpNIC:
		if !tb.ask(ctx, chatID, validation.FieldNIC, text) {
			return
		}
		f.nic = text
		f.step = stepSignUpPassword
		tb.sendMessage(ctx, chatID, "Choose a password.")
	case stepSignUpPassword:
		f.password = text

		actionCtx := tb.beginAction(ctx, chatID)
		_, err := tb.auth.SignUp(actionCtx, domain.Registration{
			Phone:    f.phone,
			Email:    f.email,
			Name:     f.name,
			NIC:      f.nic,
			Password: f.password,
		})
		if err != nil {
			tb.reportError(ctx, chatID, err)
			return
		}
		tb.resetFlow(chatID)
		tb.sendMessage(ctx, chatID, "Account created. /signin to continue.")
	}
}
