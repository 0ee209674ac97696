package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/taskvault/internal/client/api"
	"github.com/dmitrijs2005/taskvault/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for a username and password and attempts to
// create a new account. On success the session token returned by the server
// is kept by the API client, so the user is immediately signed in.
//
// The password byte slice is securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.api.Register(ctx, userName, string(password)); err != nil {
		if errors.Is(err, common.ErrorUsernameTaken) {
			printlnFn("Username is already taken")
		} else {
			printlnFn("Registration failed:", err.Error())
		}
		return err
	}

	a.userName = userName
	printlnFn("Success!")
	return nil
}

// Login prompts the user for credentials and tries to authenticate.
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.api.Login(ctx, userName, string(password)); err != nil {
		switch {
		case errors.Is(err, api.ErrUnavailable):
			printlnFn("Server unavailable, try again later")
		case errors.Is(err, common.ErrorInvalidCredentials):
			printlnFn("Invalid username or password")
		default:
			printlnFn("Login failed:", err.Error())
		}
		return err
	}

	a.userName = userName
	printlnFn("Success!")
	return nil
}

// Logout drops the session token held by the API client.
func (a *App) Logout(ctx context.Context) error {
	a.api.Logout()
	a.userName = ""
	printlnFn("Logged out")
	return nil
}
