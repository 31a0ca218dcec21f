package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/dporg/internal/common"
)

func (a *App) Login(ctx context.Context) {

	userName, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer common.WipeByteArray(password)

	ok, err := a.auth.Authenticate(ctx, userName, string(password))
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if !ok {
		fmt.Fprintln(a.out, "Invalid username or password.")
		a.log.Warn(ctx, "failed login attempt", "user", userName)
		return
	}

	a.userName = userName
	a.log.Info(ctx, "login", "user", userName)
	fmt.Fprintln(a.out, "Login successful.")
}

func (a *App) Register(ctx context.Context) {

	userName, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Register(ctx, userName, string(password)); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	a.log.Info(ctx, "user registered", "user", userName)
	fmt.Fprintln(a.out, "Success!")
}

func (a *App) Logout(ctx context.Context) {
	a.userName = ""
	fmt.Fprintln(a.out, "Logged out.")
}
