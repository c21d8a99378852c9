package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"
	"sync"
	"time"
)

// cached is one decoded scan together with the file state it was read from.
type cached struct {
	img     image.Image
	format  string
	modTime time.Time
	size    int64
}

// ImageCache keeps decoded swatch scans keyed by path. A scan is decoded
// again when its file's modification time or size changes, so re-scanning a
// swatch to the same path is picked up without restarting the server.
type ImageCache struct {
	mu      sync.RWMutex
	entries map[string]cached
}

// NewImageCache returns an empty cache.
func NewImageCache() *ImageCache {
	return &ImageCache{entries: make(map[string]cached)}
}

// Load returns the decoded image at path. PNG, JPEG and GIF are supported.
func (c *ImageCache) Load(path string) (image.Image, error) {
	e, err := c.load(path)
	if err != nil {
		return nil, err
	}
	return e.img, nil
}

func (c *ImageCache) load(path string) (cached, error) {
	st, err := os.Stat(path)
	if err != nil {
		return cached{}, fmt.Errorf("failed to open image: %w", err)
	}

	c.mu.RLock()
	e, ok := c.entries[path]
	c.mu.RUnlock()
	if ok && e.modTime.Equal(st.ModTime()) && e.size == st.Size() {
		return e, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cached{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return cached{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	e = cached{img: img, format: format, modTime: st.ModTime(), size: st.Size()}
	c.mu.Lock()
	c.entries[path] = e
	c.mu.Unlock()
	return e, nil
}

// Len reports how many images are cached.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Evict drops one image.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()
}

// Clear drops every image.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]cached)
	c.mu.Unlock()
}

// ImageInfo describes a loaded swatch scan.
type ImageInfo struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"` // decoder name: png, jpeg or gif

	// Opaque is true when every pixel is fully opaque. Transparent pixels
	// read as black when sampled.
	Opaque bool `json:"opaque"`

	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads path through cache and describes it.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	e, err := cache.load(path)
	if err != nil {
		return nil, err
	}

	opaque := true
	if o, ok := e.img.(interface{ Opaque() bool }); ok {
		opaque = o.Opaque()
	}

	b := e.img.Bounds()
	return &ImageInfo{
		Width:         b.Dx(),
		Height:        b.Dy(),
		Format:        e.format,
		Opaque:        opaque,
		FileSizeBytes: e.size,
	}, nil
}
