package cli

import (
	"context"

	"github.com/dmitrijs2005/textfix/internal/client/client"
	"github.com/dmitrijs2005/textfix/internal/client/ui"
	"github.com/dmitrijs2005/textfix/internal/common"
)

// getSimpleText, getPassword and confirmFn are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
	confirmFn     = Confirm
)

// Login prompts for credentials and stores the issued token. With a
// session already present it only says so.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		printlnFn(ui.MsgAlreadyLoggedIn)
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, email, password); err != nil {
		a.logger.Warn(ctx, "login unsuccessful", "error", err)
		printlnFn(a.term.Notice(client.DetailOr(err, ui.MsgLoginFailed)))
		return err
	}

	a.logger.Info(ctx, "login successful")
	a.setMode(ModeOnline)
	printlnFn("Login successful")
	return a.ui.Controller.Switch(ctx, ui.ViewChat)
}

// Signup prompts for name, email and password. Short passwords are refused
// before anything is sent.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Signup(ctx, name, email, password); err != nil {
		a.logger.Warn(ctx, "signup unsuccessful", "error", err)
		printlnFn(a.term.Notice(client.DetailOr(err, ui.MsgSignupFailed)))
		return err
	}

	printlnFn("Success!")
	a.setMode(ModeOnline)
	return a.ui.Controller.Switch(ctx, ui.ViewChat)
}

// OTP runs the email verification flow: send a code, then check it.
func (a *App) OTP(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	msg, err := a.auth.SendOTP(ctx, email)
	if err != nil {
		printlnFn(a.term.Notice(client.DetailOr(err, errText(err, ui.MsgOTPSendFailed))))
		return err
	}
	printlnFn(msg)

	code, err := getSimpleText(a.reader, "Enter OTP", a.out)
	if err != nil {
		return err
	}
	if _, err := a.auth.VerifyOTP(ctx, email, code); err != nil {
		printlnFn(a.term.Notice(client.DetailOr(err, errText(err, ui.MsgOTPInvalid))))
		return err
	}

	printlnFn(ui.MsgOTPVerified)
	return nil
}

// Logout clears the stored token.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	return a.ui.Chat.NewChat(ctx)
}
