package model

const (
	// DetailTitlePlaceholder is shown as the detail title of an unnamed item.
	DetailTitlePlaceholder = "ANOTHER ONE NAME"

	gridUnknownPrice   = "€ ?"
	detailUnknownPrice = "€ ???"
)

// ListName is the name shown in the grid list row for slot i.
func ListName(i int, it Item) string {
	if it.Name == "" {
		return DefaultName(i)
	}
	return it.Name
}

// DetailTitle is the editable title of the detail view.
func DetailTitle(it Item) string {
	if it.Name == "" {
		return DetailTitlePlaceholder
	}
	return it.Name
}

// GridPrice formats the price for the grid list. The unknown marker differs
// from the detail view's on purpose.
func GridPrice(it Item) string {
	if it.Price == "" {
		return gridUnknownPrice
	}
	return "€ " + it.Price
}

// DetailPrice formats the price for the detail view.
func DetailPrice(it Item) string {
	if it.Price == "" {
		return detailUnknownPrice
	}
	return "€ " + it.Price
}
