package pixel

import (
	"bytes"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"path"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// SpriteCache loads images from a file system on first use and remembers
// failures, so a missing file is only tried once.
// It satisfies takeoff.AssetChecker.
type SpriteCache struct {
	mu     sync.Mutex
	fsys   fs.FS
	images map[string]*ebiten.Image
	logger *log.Logger
}

// NewSpriteCache creates a cache reading from fsys. A nil fsys makes every sprite missing.
func NewSpriteCache(fsys fs.FS, logger *log.Logger) *SpriteCache {
	return &SpriteCache{
		fsys:   fsys,
		images: make(map[string]*ebiten.Image),
		logger: logger,
	}
}

// Available reports whether ref decodes to an image.
func (c *SpriteCache) Available(ref string) bool {
	return c.Image(ref) != nil
}

// Image returns the decoded image for ref, or nil when it cannot be loaded.
func (c *SpriteCache) Image(ref string) *ebiten.Image {
	if ref == "" {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if img, ok := c.images[ref]; ok {
		return img
	}
	img := c.load(ref)
	c.images[ref] = img
	return img
}

func (c *SpriteCache) load(ref string) *ebiten.Image {
	if c.fsys == nil {
		return nil
	}
	b, err := fs.ReadFile(c.fsys, path.Clean(ref))
	if err != nil {
		c.debug("sprite missing, using fallback", ref, err)
		return nil
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(b))
	if err != nil {
		c.debug("sprite undecodable, using fallback", ref, err)
		return nil
	}
	return img
}

func (c *SpriteCache) debug(msg, ref string, err error) {
	if c.logger != nil {
		c.logger.Debug(msg, "image", ref, "error", err)
	}
}
