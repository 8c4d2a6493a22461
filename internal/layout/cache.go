package layout

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

type sceneKey struct {
	canvas CanvasSpec
	spec   string
}

// SceneCache memoizes composed scenes so a frame loop can ask for the
// layout every frame and only pay for it when the canvas or the item set
// changes.
type SceneCache struct {
	scenes *lru.Cache[sceneKey, Scene]
}

// NewSceneCache creates a cache holding up to size scenes.
func NewSceneCache(size int) (*SceneCache, error) {
	c, err := lru.New[sceneKey, Scene](size)
	if err != nil {
		return nil, fmt.Errorf("layout: scene cache: %w", err)
	}
	return &SceneCache{scenes: c}, nil
}

// Scene returns the composed scene for canvas and spec, computing it on a
// miss. Failed compositions are not cached.
func (c *SceneCache) Scene(canvas CanvasSpec, spec SceneSpec) (Scene, error) {
	return c.Prepared(canvas, Prepare(spec))
}

// Prepared is Scene for a spec whose key was computed up front.
func (c *SceneCache) Prepared(canvas CanvasSpec, p PreparedSpec) (Scene, error) {
	key := sceneKey{canvas: canvas, spec: p.key}
	if s, ok := c.scenes.Get(key); ok {
		return s, nil
	}
	s, err := ComposeScene(canvas, p.spec)
	if err != nil {
		return Scene{}, err
	}
	c.scenes.Add(key, s)
	return s, nil
}

// Len is the number of cached scenes.
func (c *SceneCache) Len() int {
	return c.scenes.Len()
}
