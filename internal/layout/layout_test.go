package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleToHeight(t *testing.T) {
	t.Run("keeps aspect ratio within a pixel", func(t *testing.T) {
		sizes := []Size{{800, 600}, {100, 100}, {37, 91}, {1920, 1080}, {3, 1000}, {1000, 3}}
		targets := []int{1, 20, 150, 300, 777}
		for _, s := range sizes {
			for _, th := range targets {
				r, err := ScaleToHeight(s, th)
				require.NoError(t, err)
				assert.Equal(t, th, r.Height)
				assert.Greater(t, r.Width, 0)
				exact := float64(s.Width) * float64(th) / float64(s.Height)
				assert.InDelta(t, exact, float64(r.Width), 1.0, "size %s target %d", s, th)
			}
		}
	})

	t.Run("truncates", func(t *testing.T) {
		r, err := ScaleToHeight(Size{Width: 10, Height: 3}, 2)
		require.NoError(t, err)
		assert.Equal(t, 6, r.Width) // 20/3 = 6.67
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		for _, s := range []Size{{0, 10}, {10, 0}, {-1, 10}, {10, -5}} {
			_, err := ScaleToHeight(s, 100)
			assert.ErrorIs(t, err, ErrInvalidDimension, "size %s", s)
		}
		_, err := ScaleToHeight(Size{10, 10}, 0)
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})
}

func TestScaleToWidth(t *testing.T) {
	r, err := ScaleToWidth(Size{Width: 800, Height: 200}, 400)
	require.NoError(t, err)
	assert.Equal(t, Rect{Width: 400, Height: 100}, r)

	_, err = ScaleToWidth(Size{Width: 0, Height: 200}, 400)
	assert.ErrorIs(t, err, ErrInvalidDimension)
	_, err = ScaleToWidth(Size{Width: 10, Height: 200}, -1)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestCenterHorizontally(t *testing.T) {
	assert.Equal(t, 400, CenterHorizontally(400, 1200))
	assert.Equal(t, 185, CenterHorizontally(830, 1200))
	assert.Equal(t, 2, CenterHorizontally(5, 10), "odd free space truncates")
	assert.Equal(t, -50, CenterHorizontally(1300, 1200))
}

func TestLayoutHeader(t *testing.T) {
	r, err := LayoutHeader(Size{800, 600}, CanvasSpec{1200, 1000}, 300, 50)
	require.NoError(t, err)
	assert.Equal(t, Rect{X: 400, Y: 50, Width: 400, Height: 300}, r)

	_, err = LayoutHeader(Size{800, 0}, CanvasSpec{1200, 1000}, 300, 50)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestLayoutRow(t *testing.T) {
	canvas := CanvasSpec{Width: 1200, Height: 1000}

	t.Run("empty row", func(t *testing.T) {
		rects, err := LayoutRow(RowSpec{TargetHeight: 150, Spacing: 20}, canvas, 10)
		require.NoError(t, err)
		assert.NotNil(t, rects)
		assert.Empty(t, rects)
	})

	t.Run("single item ignores spacing", func(t *testing.T) {
		for _, spacing := range []int{0, 20, 500} {
			rects, err := LayoutRow(RowSpec{TargetHeight: 150, Spacing: spacing, Items: []Size{{200, 100}}}, canvas, 10)
			require.NoError(t, err)
			require.Len(t, rects, 1)
			assert.Equal(t, CenterHorizontally(300, canvas.Width), rects[0].X)
			assert.Equal(t, Rect{X: 450, Y: 10, Width: 300, Height: 150}, rects[0])
		}
	})

	t.Run("five square items", func(t *testing.T) {
		items := []Size{{100, 100}, {100, 100}, {100, 100}, {100, 100}, {100, 100}}
		rects, err := LayoutRow(RowSpec{TargetHeight: 150, Spacing: 20, Items: items}, canvas, 380)
		require.NoError(t, err)
		want := []Rect{
			{X: 185, Y: 380, Width: 150, Height: 150},
			{X: 355, Y: 380, Width: 150, Height: 150},
			{X: 525, Y: 380, Width: 150, Height: 150},
			{X: 695, Y: 380, Width: 150, Height: 150},
			{X: 865, Y: 380, Width: 150, Height: 150},
		}
		if diff := cmp.Diff(want, rects); diff != "" {
			t.Errorf("row mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("gaps equal spacing and order is kept", func(t *testing.T) {
		items := []Size{{50, 100}, {300, 100}, {7, 13}, {120, 80}, {1, 1}, {640, 480}}
		rects, err := LayoutRow(RowSpec{TargetHeight: 90, Spacing: 13, Items: items}, canvas, 0)
		require.NoError(t, err)
		require.Len(t, rects, len(items))
		for i := 1; i < len(rects); i++ {
			assert.Equal(t, 13, rects[i].X-rects[i-1].Right(), "gap before item %d", i)
		}
		for i, item := range items {
			want, err := ScaleToHeight(item, 90)
			require.NoError(t, err)
			assert.Equal(t, want.Width, rects[i].Width, "item %d", i)
		}
		total := rects[len(rects)-1].Right() - rects[0].X
		assert.Equal(t, CenterHorizontally(total, canvas.Width), rects[0].X)
	})

	t.Run("invalid item fails", func(t *testing.T) {
		_, err := LayoutRow(RowSpec{TargetHeight: 90, Items: []Size{{10, 10}, {0, 10}}}, canvas, 0)
		assert.ErrorIs(t, err, ErrInvalidDimension)
		assert.Contains(t, err.Error(), "row item 1")
	})
}

func TestLayoutFooterAndBar(t *testing.T) {
	canvas := CanvasSpec{Width: 1200, Height: 1000}

	f, err := LayoutFooter(Size{1000, 250}, canvas, 400, 550)
	require.NoError(t, err)
	assert.Equal(t, Rect{X: 400, Y: 550, Width: 400, Height: 100}, f)

	b, err := LayoutProgressBar(canvas, 300, 20, 670)
	require.NoError(t, err)
	assert.Equal(t, Rect{X: 450, Y: 670, Width: 300, Height: 20}, b)

	_, err = LayoutProgressBar(canvas, 0, 20, 670)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestRect(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	assert.Equal(t, 40, r.Right())
	assert.Equal(t, 60, r.Bottom())
	assert.True(t, r.Contains(10, 20))
	assert.False(t, r.Contains(40, 20))
	assert.False(t, r.Contains(10, 60))
	assert.True(t, Rect{}.Empty())
	assert.False(t, Rect{}.Contains(0, 0))
}
