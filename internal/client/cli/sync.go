package cli

import (
	"context"
	"fmt"
	"log"
)

// Sync mirrors the active user's profile and onboarding flag to the server.
func (a *App) Sync(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	p := a.store.Profile(ctx)
	if p == nil {
		fmt.Println("Nothing to sync")
		return nil
	}

	if err := a.api.PushProfile(ctx, p); err != nil {
		log.Printf("Sync unsuccessful: %s", err.Error())
		a.setMode(ModeOffline)
		return err
	}
	if err := a.api.PushOnboarding(ctx, a.store.IsOnboardingCompleted(ctx)); err != nil {
		log.Printf("Sync unsuccessful: %s", err.Error())
		a.setMode(ModeOffline)
		return err
	}

	a.setMode(ModeOnline)
	fmt.Println("Synced")
	return nil
}
