package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/trattoria/internal/client/models"
)

func loggedInApp(t *testing.T) *App {
	t.Helper()
	a := newTestApp("Mario\nmario@x.com\n555\n")
	require.NoError(t, a.Onboard(context.Background()))
	return a
}

func TestAddFavorite_StoresCatalogKey(t *testing.T) {
	a := loggedInApp(t)
	ctx := context.Background()

	require.NoError(t, a.AddFavorite(ctx, "3"))
	assert.Equal(t, []string{"dish_3"}, a.store.Favorites(ctx))

	require.NoError(t, a.RemoveFavorite(ctx, "3"))
	assert.Empty(t, a.store.Favorites(ctx))
}

func TestAddFavorite_UnknownDishIgnored(t *testing.T) {
	a := loggedInApp(t)
	ctx := context.Background()

	require.NoError(t, a.AddFavorite(ctx, "999"))
	require.NoError(t, a.AddFavorite(ctx, "abc"))
	assert.Empty(t, a.store.Favorites(ctx))
}

func TestAddFavorite_RequiresLogin(t *testing.T) {
	a := newTestApp("")
	require.NoError(t, a.AddFavorite(context.Background(), "3"))
	assert.False(t, a.isLoggedIn())
}

func TestParseOrderArgs(t *testing.T) {
	items, total, err := parseOrderArgs([]string{"1", "10x2"})
	require.NoError(t, err)
	assert.Equal(t, []models.OrderItem{{DishID: 1, Quantity: 1}, {DishID: 10, Quantity: 2}}, items)
	assert.InDelta(t, 16.99+2*9.99, total, 0.001)
}

func TestParseOrderArgs_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown dish", args: []string{"999"}},
		{name: "bad id", args: []string{"abc"}},
		{name: "bad quantity", args: []string{"1xfoo"}},
		{name: "zero quantity", args: []string{"1x0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parseOrderArgs(tt.args)
			require.Error(t, err)
		})
	}
}

func TestPlaceOrder_SavesHistory(t *testing.T) {
	a := loggedInApp(t)
	ctx := context.Background()

	require.NoError(t, a.PlaceOrder(ctx, []string{"1", "10x2"}))

	orders := a.store.Orders(ctx)
	require.Len(t, orders, 1)
	assert.Equal(t, models.OrderStatusPending, orders[0].Status)
	assert.InDelta(t, 36.97, orders[0].Total, 0.001)
}

func TestMenuAndSearch_DoNotRequireLogin(t *testing.T) {
	a := newTestApp("")
	ctx := context.Background()

	require.NoError(t, a.Menu(ctx, "pizza"))
	require.NoError(t, a.Menu(ctx, "nosuch"))
	require.NoError(t, a.Search(ctx, "tiramisu"))
	require.NoError(t, a.ShowDish(ctx, "3"))
	require.NoError(t, a.ShowDish(ctx, "999"))
}

func TestDeleteAccount_Confirmed(t *testing.T) {
	a := loggedInApp(t)
	a.reader = rdr("yes\n")
	ctx := context.Background()

	// no remote configured; deletion stays local
	a.api = nil

	require.NoError(t, a.store.AddToFavorites(ctx, "dish_3"))
	require.NoError(t, a.DeleteAccount(ctx))

	assert.Nil(t, a.store.ProfileByEmail(ctx, "mario@x.com"))
	assert.False(t, a.isLoggedIn())
}

func TestResetAll_Declined(t *testing.T) {
	a := loggedInApp(t)
	a.reader = rdr("no\n")

	require.NoError(t, a.ResetAll(context.Background()))
	assert.NotNil(t, a.store.ProfileByEmail(context.Background(), "mario@x.com"))
}
