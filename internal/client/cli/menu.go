package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/trattoria/internal/catalog"
)

func (a *App) printDish(ctx context.Context, d catalog.Dish) {
	mark := " "
	if a.store.IsFavorite(ctx, d.Key()) {
		mark = "*"
	}
	fmt.Printf("%s %3d  %-28s %7.2f  %s\n", mark, d.ID, d.Name, d.Price, d.Category)
}

// Menu prints the dish list, optionally filtered by category. Favorites of
// the logged-in user are marked with an asterisk.
func (a *App) Menu(ctx context.Context, category string) error {
	dishes := catalog.ByCategory(category)
	if len(dishes) == 0 {
		fmt.Printf("No dishes in category %q\n", category)
		fmt.Print("Categories:")
		for _, c := range catalog.Categories {
			fmt.Printf(" %s", c.ID)
		}
		fmt.Println()
		return nil
	}
	for _, d := range dishes {
		a.printDish(ctx, d)
	}
	return nil
}

// Search prints dishes whose name or description matches the query.
func (a *App) Search(ctx context.Context, query string) error {
	dishes := catalog.Search(query)
	if len(dishes) == 0 {
		fmt.Println("Nothing found")
		return nil
	}
	for _, d := range dishes {
		a.printDish(ctx, d)
	}
	return nil
}

// ShowDish prints a single dish with its full description.
func (a *App) ShowDish(ctx context.Context, id string) error {
	n, err := strconv.Atoi(id)
	if err != nil {
		fmt.Printf("Invalid dish id: %s\n", id)
		return nil
	}
	d := catalog.ByID(n)
	if d == nil {
		fmt.Printf("No dish with id %d\n", n)
		return nil
	}
	a.printDish(ctx, *d)
	fmt.Println(d.Description)
	return nil
}
