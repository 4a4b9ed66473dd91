// Package catalog holds the static restaurant menu and the pure query
// helpers the client screens use. The data never changes at runtime, so
// lookups are plain predicate filters over a fixed slice.
package catalog

import "fmt"

// Dish is one menu item.
type Dish struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Key is the identifier per-user state (favorites) is stored under.
func (d Dish) Key() string {
	return fmt.Sprintf("dish_%d", d.ID)
}

// Category groups dishes on the menu screen.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Categories lists the menu sections in display order.
var Categories = []Category{
	{ID: "pizza", Name: "Pizza"},
	{ID: "pasta", Name: "Pasta"},
	{ID: "drinks", Name: "Drinks"},
	{ID: "dessert", Name: "Dessert"},
}

// Dishes is the full menu.
var Dishes = []Dish{
	{ID: 1, Name: "Margherita", Category: "pizza",
		Description: "Classic pizza with tomato sauce, mozzarella, fresh basil", Price: 16.99},
	{ID: 2, Name: "Quattro Formaggi", Category: "pizza",
		Description: "Four-cheese blend with mozzarella, gorgonzola, fontina, and parmesan", Price: 19.99},
	{ID: 3, Name: "Pepperoni", Category: "pizza",
		Description: "Tomato sauce, mozzarella, spicy Italian pepperoni", Price: 18.99},
	{ID: 4, Name: "Spaghetti Carbonara", Category: "pasta",
		Description: "Egg yolk sauce, pancetta, pecorino romano, black pepper", Price: 22.99},
	{ID: 5, Name: "Fettuccine Alfredo", Category: "pasta",
		Description: "Creamy parmesan sauce, fresh fettuccine pasta", Price: 20.99},
	{ID: 6, Name: "Penne Arrabbiata", Category: "pasta",
		Description: "Spicy tomato sauce, garlic, and chili flakes", Price: 18.99},
	{ID: 7, Name: "Limoncello", Category: "drinks",
		Description: "Sweet Italian lemon liqueur", Price: 8.99},
	{ID: 8, Name: "Espresso", Category: "drinks",
		Description: "Strong, aromatic Italian coffee shot", Price: 3.99},
	{ID: 9, Name: "Chianti", Category: "drinks",
		Description: "Full-bodied Tuscan red wine", Price: 12.99},
	{ID: 10, Name: "Tiramisu", Category: "dessert",
		Description: "Espresso-soaked ladyfingers, mascarpone cream, cocoa powder", Price: 9.99},
	{ID: 11, Name: "Cannoli", Category: "dessert",
		Description: "Crispy pastry shell filled with sweet ricotta cream", Price: 7.99},
	{ID: 12, Name: "Panna Cotta", Category: "dessert",
		Description: "Creamy Italian dessert topped with fresh berries", Price: 8.99},
}
