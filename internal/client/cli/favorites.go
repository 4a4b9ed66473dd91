package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/trattoria/internal/catalog"
)

func (a *App) dishByArg(id string) *catalog.Dish {
	n, err := strconv.Atoi(id)
	if err != nil {
		fmt.Printf("Invalid dish id: %s\n", id)
		return nil
	}
	d := catalog.ByID(n)
	if d == nil {
		fmt.Printf("No dish with id %d\n", n)
	}
	return d
}

func (a *App) requireLogin() bool {
	if !a.isLoggedIn() {
		fmt.Println("Log in first")
		return false
	}
	return true
}

func (a *App) AddFavorite(ctx context.Context, id string) error {
	if !a.requireLogin() {
		return nil
	}
	d := a.dishByArg(id)
	if d == nil {
		return nil
	}
	if err := a.store.AddToFavorites(ctx, d.Key()); err != nil {
		return err
	}
	fmt.Printf("Added %s to favorites\n", d.Name)
	return nil
}

func (a *App) RemoveFavorite(ctx context.Context, id string) error {
	if !a.requireLogin() {
		return nil
	}
	d := a.dishByArg(id)
	if d == nil {
		return nil
	}
	if err := a.store.RemoveFromFavorites(ctx, d.Key()); err != nil {
		return err
	}
	fmt.Printf("Removed %s from favorites\n", d.Name)
	return nil
}

func (a *App) ListFavorites(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	favs := a.store.Favorites(ctx)
	if len(favs) == 0 {
		fmt.Println("No favorites yet")
		return nil
	}
	for _, key := range favs {
		n, err := strconv.Atoi(strings.TrimPrefix(key, "dish_"))
		if err != nil {
			continue
		}
		if d := catalog.ByID(n); d != nil {
			a.printDish(ctx, *d)
		}
	}
	return nil
}
