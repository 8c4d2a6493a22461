package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func splashSpec() SceneSpec {
	return SceneSpec{
		Header:       Size{800, 600},
		HeaderHeight: 300,
		HeaderTop:    50,
		Row: RowSpec{
			TargetHeight: 150,
			Spacing:      20,
			Items:        []Size{{100, 100}, {100, 100}, {100, 100}, {100, 100}, {100, 100}},
		},
		Footer:      Size{800, 200},
		FooterWidth: 400,
		Bar:         Size{300, 20},
		Margins:     Margins{HeaderToRow: 30, RowToFooter: 20, FooterToBar: 20},
	}
}

func TestComposeScene(t *testing.T) {
	canvas := CanvasSpec{Width: 1200, Height: 1000}

	t.Run("splash screen", func(t *testing.T) {
		scene, err := ComposeScene(canvas, splashSpec())
		require.NoError(t, err)

		want := Scene{
			Header: Rect{X: 400, Y: 50, Width: 400, Height: 300},
			Row: []Rect{
				{X: 185, Y: 380, Width: 150, Height: 150},
				{X: 355, Y: 380, Width: 150, Height: 150},
				{X: 525, Y: 380, Width: 150, Height: 150},
				{X: 695, Y: 380, Width: 150, Height: 150},
				{X: 865, Y: 380, Width: 150, Height: 150},
			},
			RowItems: []int{0, 1, 2, 3, 4},
			Footer:   Rect{X: 400, Y: 550, Width: 400, Height: 100},
			Bar:      Rect{X: 450, Y: 670, Width: 300, Height: 20},
		}
		if diff := cmp.Diff(want, scene); diff != "" {
			t.Errorf("scene mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("invalid row item is skipped", func(t *testing.T) {
		spec := splashSpec()
		spec.Row.Items = []Size{{100, 100}, {0, 0}, {100, 100}}
		scene, err := ComposeScene(canvas, spec)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 2}, scene.RowItems)
		require.Len(t, scene.Row, 2)
		// 150*2 + 20 = 320, (1200-320)/2 = 440
		assert.Equal(t, 440, scene.Row[0].X)
		assert.Equal(t, 610, scene.Row[1].X)
	})

	t.Run("missing header leaves an empty slot", func(t *testing.T) {
		spec := splashSpec()
		spec.Header = Size{}
		scene, err := ComposeScene(canvas, spec)
		require.NoError(t, err)
		assert.True(t, scene.Header.Empty())
		assert.Equal(t, 50+30, scene.Row[0].Y)
	})

	t.Run("empty row collapses its band", func(t *testing.T) {
		spec := splashSpec()
		spec.Row.Items = nil
		scene, err := ComposeScene(canvas, spec)
		require.NoError(t, err)
		assert.Empty(t, scene.Row)
		assert.Equal(t, 350+30+20, scene.Footer.Y)
	})

	t.Run("bad bar is a configuration error", func(t *testing.T) {
		spec := splashSpec()
		spec.Bar = Size{Width: 300}
		_, err := ComposeScene(canvas, spec)
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})

	t.Run("bad row height is a configuration error", func(t *testing.T) {
		spec := splashSpec()
		spec.Row.TargetHeight = 0
		_, err := ComposeScene(canvas, spec)
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})
}

func TestComposeVerticalStack(t *testing.T) {
	header := Rect{X: 10, Y: 5, Width: 20, Height: 10}
	row := []Rect{{X: 0, Width: 5, Height: 8}, {X: 7, Width: 5, Height: 12}}
	footer := Rect{X: 3, Width: 40, Height: 6}

	scene, err := ComposeVerticalStack(CanvasSpec{Width: 100}, header, row, footer, Size{50, 4}, Margins{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, header, scene.Header)
	assert.Equal(t, 16, scene.Row[0].Y)
	assert.Equal(t, 16, scene.Row[1].Y)
	assert.Equal(t, 16+12+2, scene.Footer.Y)
	assert.Equal(t, Rect{X: 25, Y: 30 + 6 + 3, Width: 50, Height: 4}, scene.Bar)
	assert.Zero(t, row[0].Y, "input rects are not modified")
	assert.Equal(t, []int{0, 1}, scene.RowItems)

	empty, err := ComposeVerticalStack(CanvasSpec{Width: 100}, header, nil, footer, Size{50, 4}, Margins{})
	require.NoError(t, err)
	assert.Empty(t, empty.RowItems)
}

func TestPrepare(t *testing.T) {
	spec := splashSpec()
	p := Prepare(spec)
	spec.Row.Items[0] = Size{Width: 1, Height: 1}
	assert.Equal(t, Size{100, 100}, p.Spec().Row.Items[0], "prepared spec is a snapshot")

	cache, err := NewSceneCache(2)
	require.NoError(t, err)
	a, err := cache.Prepared(CanvasSpec{1200, 1000}, p)
	require.NoError(t, err)
	b, err := cache.Scene(CanvasSpec{1200, 1000}, splashSpec())
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, 1, cache.Len(), "prepared and plain lookups share entries")
}

func TestSceneRects(t *testing.T) {
	scene, err := ComposeScene(CanvasSpec{1200, 1000}, splashSpec())
	require.NoError(t, err)

	rects := scene.Rects(150)
	require.Len(t, rects, 1+5+1+2)
	assert.Equal(t, scene.Header, rects[0])
	assert.Equal(t, scene.Footer, rects[6])
	assert.Equal(t, scene.Bar, rects[7])
	assert.Equal(t, Rect{X: 450, Y: 670, Width: 150, Height: 20}, rects[8])

	assert.Equal(t, 0, scene.BarFill(-3).Width)
	assert.Equal(t, 300, scene.BarFill(999).Width)
}

func TestSceneCache(t *testing.T) {
	cache, err := NewSceneCache(2)
	require.NoError(t, err)

	spec := splashSpec()
	a, err := cache.Scene(CanvasSpec{1200, 1000}, spec)
	require.NoError(t, err)
	b, err := cache.Scene(CanvasSpec{1200, 1000}, spec)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, 1, cache.Len())

	wide, err := cache.Scene(CanvasSpec{1600, 1000}, spec)
	require.NoError(t, err)
	assert.Equal(t, 600, wide.Header.X)
	assert.Equal(t, 2, cache.Len())

	spec.Row.Items = spec.Row.Items[:2]
	short, err := cache.Scene(CanvasSpec{1200, 1000}, spec)
	require.NoError(t, err)
	assert.Len(t, short.Row, 2)
	assert.Equal(t, 2, cache.Len(), "oldest entry evicted")

	spec.Bar = Size{}
	_, err = cache.Scene(CanvasSpec{1200, 1000}, spec)
	assert.ErrorIs(t, err, ErrInvalidDimension)
	assert.Equal(t, 2, cache.Len())

	_, err = NewSceneCache(0)
	assert.Error(t, err)
}
