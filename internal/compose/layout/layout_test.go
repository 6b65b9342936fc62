package layout

import (
	"image"
	"testing"
)

func TestInset(t *testing.T) {
	got := Inset(image.Rect(0, 0, 100, 100), 10)
	if want := image.Rect(10, 10, 90, 90); got != want {
		t.Fatalf("Inset = %v, want %v", got, want)
	}
	// Over-inset collapses instead of inverting.
	got = Inset(image.Rect(0, 0, 10, 10), 8)
	if got.Dx() < 0 || got.Dy() < 0 {
		t.Fatalf("Inset produced negative extent: %v", got)
	}
}

func TestFitScale(t *testing.T) {
	if got := FitScale(902, 902, 100, 100); got != 9.02 {
		t.Fatalf("FitScale = %v, want 9.02", got)
	}
	if got := FitScale(100, 50, 10, 10); got != 5 {
		t.Fatalf("FitScale limited by height = %v, want 5", got)
	}
	if got := FitScale(100, 100, 0, 10); got != 0 {
		t.Fatalf("FitScale with zero width = %v, want 0", got)
	}
}

func TestCenterRect(t *testing.T) {
	got := CenterRect(image.Rect(0, 0, 1024, 1024), 902, 902)
	if want := image.Rect(61, 61, 963, 963); got != want {
		t.Fatalf("CenterRect = %v, want %v", got, want)
	}
}

func TestAnchorBottomRight(t *testing.T) {
	got := AnchorBottomRight(image.Rect(0, 0, 100, 100), 20, 30)
	if want := image.Rect(80, 70, 100, 100); got != want {
		t.Fatalf("AnchorBottomRight = %v, want %v", got, want)
	}
	got = AnchorBottomRight(image.Rect(0, 0, 10, 10), 50, 50)
	if want := image.Rect(0, 0, 10, 10); got != want {
		t.Fatalf("clamped AnchorBottomRight = %v, want %v", got, want)
	}
}
