package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/endurance/internal/model"
	"github.com/idilsaglam/endurance/internal/photo"
	"github.com/idilsaglam/endurance/internal/tui"
	"github.com/idilsaglam/endurance/internal/ui"
)

const alertPhoto = "Image load failed"

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "Print the board and the list",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withController(cmd, app, func(c *tui.Controller) error {
				ui.Panel(cmd.OutOrStdout(), boardLines(c))
				return nil
			})
		},
	}
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <n>",
		Short: "Print the detail of piece n (1-9)",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parsePiece(cmd, args[0])
			if err != nil {
				return err
			}
			return withController(cmd, app, func(c *tui.Controller) error {
				c.Open(i)
				ui.Panel(cmd.OutOrStdout(), detailLines(c))
				return nil
			})
		},
	}
}

func newNameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "name <n> <text...>",
		Short: "Name piece n (text can be multiple words)",
		Args:  usageArgs(cobra.MinimumNArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parsePiece(cmd, args[0])
			if err != nil {
				return err
			}
			return withController(cmd, app, func(c *tui.Controller) error {
				c.Open(i)
				changed, err := c.CommitName(cmd.Context(), strings.Join(args[1:], " "), false)
				if err != nil {
					return fmt.Errorf("save: %w", err)
				}
				if !changed {
					return errUsage("name: empty name")
				}
				ui.OK(cmd.OutOrStdout(), "named "+c.Item().Name)
				return nil
			})
		},
	}
}

func newPriceCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "price <n> [text...]",
		Short: "Set the price of piece n; no text clears it",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parsePiece(cmd, args[0])
			if err != nil {
				return err
			}
			return withController(cmd, app, func(c *tui.Controller) error {
				c.Open(i)
				if _, err := c.CommitPrice(cmd.Context(), strings.Join(args[1:], " "), false); err != nil {
					return fmt.Errorf("save: %w", err)
				}
				if c.Item().Price == "" {
					ui.OK(cmd.OutOrStdout(), "price cleared")
				} else {
					ui.OK(cmd.OutOrStdout(), "price set: "+model.DetailPrice(c.Item()))
				}
				return nil
			})
		},
	}
}

func newPhotoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "photo <n> <path>",
		Short: "Store an image file as the photo of piece n",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parsePiece(cmd, args[0])
			if err != nil {
				return err
			}
			p, err := photo.Load(args[1])
			if err != nil {
				app.log.Warn("photo load failed", zap.String("path", args[1]), zap.Error(err))
				return fmt.Errorf("%s: %w", alertPhoto, err)
			}
			return withController(cmd, app, func(c *tui.Controller) error {
				if err := c.SetPhoto(cmd.Context(), i, p); err != nil {
					return fmt.Errorf("save: %w", err)
				}
				ui.OK(cmd.OutOrStdout(), "photo saved ("+p.Summary()+")")
				return nil
			})
		},
	}
}

func newClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty all nine pieces",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withController(cmd, app, func(c *tui.Controller) error {
				if err := c.ClearAll(cmd.Context()); err != nil {
					return fmt.Errorf("save: %w", err)
				}
				ui.OK(cmd.OutOrStdout(), "cleared")
				return nil
			})
		},
	}
}

// withController opens the configured store for the duration of fn.
func withController(cmd *cobra.Command, app *App, fn func(c *tui.Controller) error) error {
	st, err := openStore(cmd.Context(), app)
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(tui.NewController(cmd.Context(), st, app.log))
}

// parsePiece turns a 1-based piece number into a slot index.
func parsePiece(cmd *cobra.Command, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errUsage("not a number: %s", s)
	}
	if n < 1 || n > model.Size {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Current().Muted.Render("Hint: run `endurance ls` to see the pieces"))
		return 0, errUsage("piece out of range: have %d, got %d", model.Size, n)
	}
	return n - 1, nil
}

// -------------- rendering helpers --------------

func stats(c model.Collection) (named, priced, photos int) {
	for _, it := range c {
		if it.Name != "" {
			named++
		}
		if it.Price != "" {
			priced++
		}
		if it.HasImage() {
			photos++
		}
	}
	return
}

func boardLines(c *tui.Controller) []string {
	t := ui.Current()
	items := c.Items()
	named, priced, pics := stats(items)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Endurance"),
		t.Success.Render("named"), named,
		t.Price.Render("priced"), priced,
		t.Accent.Render(t.SymPhoto), pics,
	)

	var photos [model.Size]string
	for i := range photos {
		photos[i] = c.Photo(i)
	}
	board := lipgloss.JoinHorizontal(lipgloss.Top,
		ui.Board(items, photos, ui.NoSelection), "  ", ui.List(items, ui.NoSelection))

	return []string{
		header,
		"",
		board,
		"",
		t.Muted.Render("Tip: name a piece with `endurance name 1 \"Blue vase\"`"),
	}
}

func detailLines(c *tui.Controller) []string {
	t := ui.Current()
	it := c.Item()
	pic := t.Muted.Render("no photo")
	if it.HasImage() {
		pic = t.SymPhoto + " " + c.Photo(c.Current())
	}
	return []string{
		t.Muted.Render("Piece " + strconv.Itoa(c.Current()+1)),
		t.Title.Render(model.DetailTitle(it)),
		pic,
		t.Price.Render(model.DetailPrice(it)),
	}
}
