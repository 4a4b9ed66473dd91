package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/trattoria/internal/catalog"
	"github.com/dmitrijs2005/trattoria/internal/client/models"
)

// parseOrderArgs turns tokens like "3" or "10x2" into order items priced
// from the catalog.
func parseOrderArgs(args []string) ([]models.OrderItem, float64, error) {
	var items []models.OrderItem
	var total float64
	for _, arg := range args {
		idPart, qtyPart, found := strings.Cut(arg, "x")
		qty := 1
		if found {
			q, err := strconv.Atoi(qtyPart)
			if err != nil || q < 1 {
				return nil, 0, fmt.Errorf("invalid quantity in %q", arg)
			}
			qty = q
		}
		id, err := strconv.Atoi(idPart)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid dish id in %q", arg)
		}
		d := catalog.ByID(id)
		if d == nil {
			return nil, 0, fmt.Errorf("no dish with id %d", id)
		}
		items = append(items, models.OrderItem{DishID: id, Quantity: qty})
		total += d.Price * float64(qty)
	}
	return items, total, nil
}

// PlaceOrder builds an order from the arguments and saves it to the active
// user's history.
func (a *App) PlaceOrder(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}
	items, total, err := parseOrderArgs(args)
	if err != nil {
		fmt.Println(err.Error())
		return nil
	}

	o, err := a.store.SaveOrder(ctx, items, total)
	if err != nil {
		return err
	}
	fmt.Printf("Order %s placed, total %.2f\n", o.ID, o.Total)
	return nil
}

// ListOrders prints the active user's history, newest first.
func (a *App) ListOrders(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	orders := a.store.Orders(ctx)
	if len(orders) == 0 {
		fmt.Println("No orders yet")
		return nil
	}
	for _, o := range orders {
		fmt.Printf("%s  %s  %7.2f  %s\n", o.PlacedAt.Format("2006-01-02 15:04"), o.Status, o.Total, o.ID)
		for _, item := range o.Items {
			if d := catalog.ByID(item.DishID); d != nil {
				fmt.Printf("    %dx %s\n", item.Quantity, d.Name)
			}
		}
	}
	return nil
}
