package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/endurance/internal/model"
)

func TestMaskBorder_FollowsOffsets(t *testing.T) {
	th := classic()

	corner := maskBorder(th, 0, 0)
	assert.Equal(t, th.Frame.Top, corner.Top)
	assert.Equal(t, th.Frame.Left, corner.Left)
	assert.Equal(t, th.Cut.Right, corner.Right)
	assert.Equal(t, th.Cut.Bottom, corner.Bottom)

	center := maskBorder(th, 50, 50)
	assert.Equal(t, th.Cut.Top, center.Top)
	assert.Equal(t, th.Cut.Left, center.Left)
	assert.Equal(t, th.Cut.Right, center.Right)
	assert.Equal(t, th.Cut.Bottom, center.Bottom)

	last := maskBorder(th, 100, 100)
	assert.Equal(t, th.Frame.Right, last.Right)
	assert.Equal(t, th.Frame.Bottom, last.Bottom)
}

func TestBackgroundAt_SamplesRampByOffsets(t *testing.T) {
	th := classic()
	for i := 0; i < model.Size; i++ {
		x, y := model.Offsets(i)
		assert.Equal(t, th.Ramp[(x+y)/50], backgroundAt(th, x, y), "piece %d", i)
	}
	assert.Equal(t, th.Ramp[0], backgroundAt(th, 0, 0))
	assert.Equal(t, th.Ramp[4], backgroundAt(th, 100, 100))
}

func TestPiece_PlaceholderOrPhoto(t *testing.T) {
	empty := Piece(4, model.Item{}, "", false)
	assert.Contains(t, empty, "5")

	withPhoto := Piece(4, model.Item{Image: "data:image/png;base64,AA=="}, "PNG 2×2", false)
	assert.Contains(t, withPhoto, "PNG 2×2")
	assert.NotContains(t, withPhoto, "5")
}

func TestBoard_HasNineNumbersInOrder(t *testing.T) {
	out := Board(model.DefaultCollection(), [model.Size]string{}, NoSelection)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3*(PieceHeight+2))

	for n := 1; n <= 9; n++ {
		assert.Contains(t, out, string(rune('0'+n)))
	}
	// Row 2 holds 4, 5, 6 left to right.
	mid := lines[PieceHeight+2+2]
	assert.Less(t, strings.Index(mid, "4"), strings.Index(mid, "5"))
	assert.Less(t, strings.Index(mid, "5"), strings.Index(mid, "6"))
	for _, ln := range lines {
		assert.Equal(t, 3*(PieceWidth+2), lipgloss.Width(ln))
	}
}

func TestListRow(t *testing.T) {
	row := ListRow(0, model.Item{}, false)
	assert.True(t, strings.HasPrefix(row, "  Object 1 "), row)
	assert.True(t, strings.HasSuffix(row, "€ ?"), row)

	row = ListRow(2, model.Item{Name: "Clock", Price: "12.5"}, true)
	assert.Contains(t, row, "Clock")
	assert.True(t, strings.HasSuffix(row, "€ 12.5"), row)

	long := ListRow(1, model.Item{Name: strings.Repeat("x", 80), Price: "1"}, false)
	assert.LessOrEqual(t, lipgloss.Width(long), ListWidth+2)
	assert.Contains(t, long, "…")
}

func TestList_OneRowPerSlot(t *testing.T) {
	out := List(model.DefaultCollection(), 3)
	assert.Len(t, strings.Split(out, "\n"), model.Size)
}

func TestPanelAndMessages(t *testing.T) {
	var buf bytes.Buffer
	Panel(&buf, []string{"hello"})
	OK(&buf, "saved")
	Fail(&buf, "nope")
	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "✔ saved")
	assert.Contains(t, out, "✖ nope")
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme("classic") })
	SetTheme("mono")
	assert.Equal(t, "#", Current().SymPhoto)
	SetTheme("NEON")
	assert.Equal(t, lipgloss.RoundedBorder(), Current().Frame)
	SetTheme("whatever")
	assert.Equal(t, "▣", Current().SymPhoto)
}
