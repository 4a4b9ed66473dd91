package catalog

import "strings"

// ByCategory returns all dishes in the given category. The special value
// "all" (or an empty string) returns the whole menu.
func ByCategory(category string) []Dish {
	if category == "" || category == "all" {
		return append([]Dish(nil), Dishes...)
	}
	var result []Dish
	for _, d := range Dishes {
		if d.Category == category {
			result = append(result, d)
		}
	}
	return result
}

// ByID returns the dish with the given id, or nil when no such dish exists.
func ByID(id int) *Dish {
	for i := range Dishes {
		if Dishes[i].ID == id {
			d := Dishes[i]
			return &d
		}
	}
	return nil
}

// Search returns dishes whose name or description contains the query,
// case-insensitively. An empty or whitespace-only query matches nothing.
func Search(query string) []Dish {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var result []Dish
	for _, d := range Dishes {
		if strings.Contains(strings.ToLower(d.Name), q) ||
			strings.Contains(strings.ToLower(d.Description), q) {
			result = append(result, d)
		}
	}
	return result
}
