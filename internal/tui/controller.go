package tui

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/idilsaglam/endurance/internal/model"
	"github.com/idilsaglam/endurance/internal/photo"
)

// Store is what the controller needs from the collection store.
type Store interface {
	Load(ctx context.Context) model.Collection
	Save(ctx context.Context, c model.Collection) error
}

// View is the screen currently shown.
type View int

const (
	GridView View = iota
	DetailView
)

func (v View) String() string {
	if v == DetailView {
		return "detail"
	}
	return "grid"
}

// Controller owns the collection, the open slot and the active view. It is
// the single writer: every mutation goes through it and is persisted at once.
type Controller struct {
	items   model.Collection
	current int
	view    View
	photos  [model.Size]string

	store Store
	log   *zap.Logger
}

// NewController loads the collection from st.
func NewController(ctx context.Context, st Store, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Controller{store: st, log: log}
	c.Replace(st.Load(ctx))
	return c
}

func (c *Controller) Items() model.Collection { return c.items }
func (c *Controller) Current() int            { return c.current }
func (c *Controller) View() View              { return c.view }
func (c *Controller) Item() model.Item        { return c.items[c.current] }

// Photo is the display summary of slot i's stored image ("" when none).
func (c *Controller) Photo(i int) string { return c.photos[i] }

// Route picks the first screen: the detail view of a deep-linked slot, or
// the grid when there is none.
func (c *Controller) Route(index int, ok bool) {
	if ok && model.ValidIndex(index) {
		c.Open(index)
		return
	}
	c.ShowGrid()
}

// Open switches to the detail view of slot i. Invalid indexes are ignored.
func (c *Controller) Open(i int) {
	if !model.ValidIndex(i) {
		return
	}
	c.current = i
	c.view = DetailView
}

// ShowGrid switches to the grid. Edits are already persisted, so nothing is
// discarded.
func (c *Controller) ShowGrid() {
	c.view = GridView
}

// CommitName applies a name prompt result. Cancelled or blank input leaves
// the name alone; otherwise the trimmed text is stored and saved.
func (c *Controller) CommitName(ctx context.Context, input string, cancelled bool) (bool, error) {
	if cancelled {
		return false, nil
	}
	name := strings.TrimSpace(input)
	if name == "" {
		return false, nil
	}
	c.items[c.current].Name = name
	return true, c.save(ctx)
}

// CommitPrice applies a price prompt result. Cancel leaves the price; blank
// input clears it; anything else is stored trimmed, with no number check.
func (c *Controller) CommitPrice(ctx context.Context, input string, cancelled bool) (bool, error) {
	if cancelled {
		return false, nil
	}
	c.items[c.current].Price = strings.TrimSpace(input)
	return true, c.save(ctx)
}

// SetPhoto stores p as slot i's image.
func (c *Controller) SetPhoto(ctx context.Context, i int, p photo.Photo) error {
	if !model.ValidIndex(i) {
		return nil
	}
	c.items[i].Image = p.URI
	c.photos[i] = p.Summary()
	return c.save(ctx)
}

// ClearAll empties every slot, saves, and returns to the grid.
func (c *Controller) ClearAll(ctx context.Context) error {
	c.Replace(model.Empty())
	err := c.save(ctx)
	c.ShowGrid()
	return err
}

// Replace swaps in a collection loaded from elsewhere.
func (c *Controller) Replace(items model.Collection) {
	c.items = items
	for i, it := range items {
		c.photos[i] = photo.Describe(it.Image)
	}
}

func (c *Controller) save(ctx context.Context) error {
	if err := c.store.Save(ctx, c.items); err != nil {
		c.log.Error("save failed", zap.Error(err))
		return err
	}
	return nil
}
