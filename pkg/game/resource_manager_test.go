package game

import "testing"

// TestNewResourceManager tests the creation of a new ResourceManager instance.
func TestNewResourceManager(t *testing.T) {
	rm := NewResourceManager()
	if rm == nil {
		t.Fatal("NewResourceManager returned nil")
	}
	if rm.fontFaceCache == nil {
		t.Error("fontFaceCache not initialized")
	}
}

// TestLoadFontCaching verifies that the same size returns the cached face.
func TestLoadFontCaching(t *testing.T) {
	rm := NewResourceManager()

	face1, err := rm.LoadFont(14)
	if err != nil {
		t.Fatalf("LoadFont failed: %v", err)
	}
	face2, err := rm.LoadFont(14)
	if err != nil {
		t.Fatalf("LoadFont failed: %v", err)
	}
	if face1 != face2 {
		t.Error("expected cached face for the same size")
	}
	if face1.Size != 14 {
		t.Errorf("face size = %v, want 14", face1.Size)
	}

	face3, err := rm.LoadFont(20)
	if err != nil {
		t.Fatalf("LoadFont failed: %v", err)
	}
	if face3 == face1 {
		t.Error("expected a new face for a different size")
	}
	if face3.Source != face1.Source {
		t.Error("expected faces to share one font source")
	}
}

func TestLoadFontInvalidSize(t *testing.T) {
	rm := NewResourceManager()
	if _, err := rm.LoadFont(0); err == nil {
		t.Error("expected error for zero font size")
	}
}
