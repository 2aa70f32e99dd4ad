package domain

// DoneCode is the sentinel selection that finishes order entry.
const DoneCode = 0

// MenuItem is one purchasable product: code, name and unit price in rupiah.
type MenuItem struct {
	Code  int
	Name  string
	Price int64
}

// menu is the fixed product list, defined at startup and read only.
var menu = []MenuItem{
	{Code: 1, Name: "Jus Jeruk", Price: 8_000},
	{Code: 2, Name: "Jus Mangga", Price: 10_000},
	{Code: 3, Name: "Jus Alpukat", Price: 12_000},
	{Code: 4, Name: "Jus Jambu", Price: 9_000},
	{Code: 5, Name: "Jus Melon", Price: 8_500},
}

// Menu returns all menu items in display order.
func Menu() []MenuItem {
	items := make([]MenuItem, len(menu))
	copy(items, menu)

	return items
}

// MenuItemByCode returns the menu item with the given code.
func MenuItemByCode(code int) (MenuItem, bool) {
	for _, item := range menu {
		if item.Code == code {
			return item, true
		}
	}

	return MenuItem{}, false
}
