package model

import (
	"encoding/json"
	"strconv"
)

const (
	// Size is the fixed number of slots in a collection.
	Size = 9
	// Columns is the board width; rows follow from Size.
	Columns = 3
)

// Item is one slot of the collection. Empty strings mean "unset".
// The slot's index is its position in the Collection and is not stored.
type Item struct {
	Name  string `json:"name"`
	Price string `json:"price"`
	Image string `json:"image"` // data URI
}

// UnmarshalJSON also accepts records written with the older imageData field.
func (it *Item) UnmarshalJSON(b []byte) error {
	var w struct {
		Name      string `json:"name"`
		Price     string `json:"price"`
		Image     string `json:"image"`
		ImageData string `json:"imageData,omitempty"`
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	it.Name, it.Price, it.Image = w.Name, w.Price, w.Image
	if it.Image == "" {
		it.Image = w.ImageData
	}
	return nil
}

// HasImage reports whether a photo is stored for the item.
func (it Item) HasImage() bool { return it.Image != "" }

// Collection is the ordered set of nine items. The array type keeps the
// length fixed; slots are only ever mutated in place by index.
type Collection [Size]Item

// DefaultCollection is what a first run (or unreadable storage) starts with.
func DefaultCollection() Collection {
	var c Collection
	for i := range c {
		c[i].Name = DefaultName(i)
	}
	return c
}

// Empty returns a collection of nine fully empty items.
func Empty() Collection { return Collection{} }

// ValidIndex reports whether i addresses a slot.
func ValidIndex(i int) bool { return i >= 0 && i < Size }

// DefaultName is the positional name used when an item has none.
func DefaultName(i int) string { return "Object " + strconv.Itoa(i+1) }
