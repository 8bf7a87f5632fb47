package game

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ResourceManager is responsible for centralized management of rendering resources.
// It loads the label font once and caches one text face per size.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The caches use standard Go maps.
// For the single-threaded game loop, no synchronization is needed.
//
// Usage:
//
//	rm := NewResourceManager()
//	face, err := rm.LoadFont(10)
//	if err != nil {
//	    log.Printf("Failed to load font: %v", err)
//	}
type ResourceManager struct {
	fontSource    *text.GoTextFaceSource      // Parsed Go Regular font, shared by all faces
	fontFaceCache map[string]*text.GoTextFace // Cache for Ebitengine v2 text faces: size -> face
}

// NewResourceManager creates and initializes a new ResourceManager instance with empty caches.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		fontFaceCache: make(map[string]*text.GoTextFace),
	}
}

// LoadFont returns a Go Regular text face of the given pixel size, creating and caching it on first use.
//
// Parameters:
//   - size: Font size in pixels.
//
// Returns:
//   - A pointer to the text.GoTextFace ready for rendering.
//   - An error if the embedded font data cannot be parsed.
func (rm *ResourceManager) LoadFont(size float64) (*text.GoTextFace, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %.1f", size)
	}

	cacheKey := fmt.Sprintf("goregular:%.1f", size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source: %w", err)
		}
		rm.fontSource = source
	}

	goTextFace := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = goTextFace

	return goTextFace, nil
}
