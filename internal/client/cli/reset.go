package cli

import (
	"context"
	"fmt"
	"os"
)

// DeleteAccount removes the active user entirely: profile, favorites,
// orders, sessions. Other accounts on the device are untouched. The mirrored
// server copy is cleared too when the server is reachable.
func (a *App) DeleteAccount(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	ok, err := confirm(a.reader, "Delete your account and all its data?", os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Cancelled")
		return nil
	}

	if err := a.store.RemoveAllUserData(ctx); err != nil {
		return err
	}
	if a.api != nil {
		if err := a.api.DeleteUser(ctx); err != nil {
			// Local deletion already happened; the mirror will be overwritten
			// on the next sync from another device.
			fmt.Println("Server copy not cleared (server unreachable)")
		}
	}
	fmt.Println("Account deleted")
	return nil
}

// ResetAll wipes the entire local store: all accounts, all data.
func (a *App) ResetAll(ctx context.Context) error {
	ok, err := confirm(a.reader, "Wipe ALL local data for ALL accounts?", os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Cancelled")
		return nil
	}

	if err := a.store.Reset(ctx); err != nil {
		return err
	}
	fmt.Println("Local data wiped")
	return nil
}
