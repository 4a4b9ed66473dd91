package cli

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
)

// getSimpleText, getHiddenCode and confirm are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getHiddenCode = GetHiddenCode
var confirm = Confirm

// generateCode produces the 6-digit login verification code. There is no
// real mail delivery; the code is shown in the log, simulating the message
// the user would receive.
var generateCode = func() string {
	return fmt.Sprintf("%06d", rand.IntN(1000000))
}

// Onboard prompts for name, email and phone and creates (or updates) the
// profile. Saving activates the account, so the user is logged in right
// after; onboarding is marked completed at the end of the flow.
func (a *App) Onboard(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	phone, err := getSimpleText(a.reader, "Enter phone", os.Stdout)
	if err != nil {
		return err
	}

	p, err := a.store.SaveProfile(ctx, newProfile(email, name, phone))
	if err != nil {
		log.Printf("Onboarding unsuccessful: %s", err.Error())
		return err
	}

	if err := a.store.SetOnboardingCompleted(ctx); err != nil {
		return err
	}

	fmt.Printf("Welcome, %s!\n", p.Name)
	return nil
}

// Login prompts for an email, verifies that an account exists, then runs the
// verification-code exchange. The code entry is read without echo.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	p := a.store.ProfileByEmail(ctx, email)
	if p == nil {
		fmt.Printf("No account for %s; run 'onboard' first\n", email)
		return nil
	}

	code := generateCode()
	log.Printf("Verification code sent to %s (demo delivery: %s)", email, code)

	entered, err := getHiddenCode(os.Stdout)
	if err != nil {
		return err
	}
	if entered != code {
		fmt.Println("Verification code does not match")
		return nil
	}

	if err := a.store.SetActiveUser(ctx, email); err != nil {
		return err
	}

	fmt.Printf("Welcome back, %s!\n", p.Name)
	return nil
}

// Logout clears the session and the onboarding flag. The profile, favorites
// and order history stay on the device for the next login.
func (a *App) Logout(ctx context.Context) error {
	if err := a.store.ClearUserData(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}

// ShowProfile prints the active user's record.
func (a *App) ShowProfile(ctx context.Context) error {
	p := a.store.Profile(ctx)
	if p == nil {
		fmt.Println("Not logged in")
		return nil
	}
	fmt.Printf("%s <%s> %s\n", p.Name, p.Email, p.Phone)
	if a.store.IsOnboardingCompleted(ctx) {
		fmt.Println("Onboarding: completed")
	} else {
		fmt.Println("Onboarding: pending")
	}
	return nil
}
