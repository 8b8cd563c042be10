package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of decoded images an ImageCache keeps when
// no size is given.
const DefaultCacheSize = 16

// ImageCache keeps recently decoded images keyed by file path, so repeated
// sampling of the same screenshot reads the disk once.
//
// The cache holds at most its configured number of images and evicts the
// least recently used one when full. It is safe for concurrent use; the
// locking lives in the underlying golang-lru cache.
//
// # Example Usage
//
//	cache := imaging.NewImageCache(0)
//	img, err := cache.Load("/path/to/screenshot.png")
//	if err != nil {
//	    return err
//	}
//	c, err := imaging.SampleColor(img, 10, 10)
type ImageCache struct {
	size   int
	images *lru.Cache[string, image.Image]
}

// NewImageCache creates an empty cache holding up to size images. A size
// below 1 selects DefaultCacheSize.
func NewImageCache(size int) *ImageCache {
	if size < 1 {
		size = DefaultCacheSize
	}
	// lru.New only fails for a non-positive size.
	images, _ := lru.New[string, image.Image](size)
	return &ImageCache{size: size, images: images}
}

// Load returns the decoded image at path, reading it from disk only when it
// is not cached. PNG, JPEG and GIF are supported.
//
// The path string is the key: a relative and an absolute path to the same
// file are cached separately.
func (c *ImageCache) Load(path string) (image.Image, error) {
	if img, ok := c.images.Get(path); ok {
		return img, nil
	}

	img, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	// Another goroutine may have decoded the same file meanwhile; keep the
	// first copy so callers share one image.
	if prev, ok, _ := c.images.PeekOrAdd(path, img); ok {
		c.images.Get(path)
		return prev, nil
	}
	return img, nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	return c.images.Len()
}

// Contains reports whether path is cached without touching its recency.
func (c *ImageCache) Contains(path string) bool {
	return c.images.Contains(path)
}

// Purge removes all images from the cache.
func (c *ImageCache) Purge() {
	c.images.Purge()
}

// Remove drops the image cached under path, if any. The next Load for that
// path reads from disk again.
func (c *ImageCache) Remove(path string) {
	c.images.Remove(path)
}
