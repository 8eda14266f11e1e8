package core

import (
	"reflect"
	"testing"
)

func TestViewportDrawPixelOffsetsByOrigin(t *testing.T) {
	tests := []struct {
		name   string
		origin ScreenPos
		offset ScreenPos
		want   ScreenPos
	}{
		{"zero origin", ScreenPos{0, 0}, ScreenPos{3, 4}, ScreenPos{3, 4}},
		{"offset origin", ScreenPos{2, 2}, ScreenPos{0, 0}, ScreenPos{2, 2}},
		{"both non-zero", ScreenPos{10, 5}, ScreenPos{7, 1}, ScreenPos{17, 6}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			vp := NewViewport(tc.origin, NewScreenSize(20, 20))
			vp.DrawPixel(NewPixel('x', tc.offset))

			pixels := vp.Pixels()
			if len(pixels) != 1 {
				t.Fatalf("Pixels() returned %d pixels, expected 1", len(pixels))
			}
			if pixels[0].Pos != tc.want {
				t.Errorf("Pos = %+v, expected %+v", pixels[0].Pos, tc.want)
			}
		})
	}
}

func TestViewportPassesThroughOutOfBounds(t *testing.T) {
	vp := NewViewport(NewScreenPos(4, 4), NewScreenSize(3, 3))

	vp.DrawPixel(NewPixel('a', NewScreenPos(-2, 0)))
	vp.DrawPixel(NewPixel('b', NewScreenPos(5, 9)))

	want := []Pixel{
		{Glyph: 'a', Pos: ScreenPos{2, 4}},
		{Glyph: 'b', Pos: ScreenPos{9, 13}},
	}
	if got := vp.Pixels(); !reflect.DeepEqual(got, want) {
		t.Errorf("Pixels() = %+v, expected %+v", got, want)
	}

	if vp.Contains(NewScreenPos(-2, 0)) || vp.Contains(NewScreenPos(3, 0)) {
		t.Error("Contains should reject offsets outside the viewport size")
	}
	if !vp.Contains(NewScreenPos(2, 2)) {
		t.Error("Contains(2, 2) should be true for a 3x3 viewport")
	}
}

func TestViewportPixelsDrains(t *testing.T) {
	vp := NewViewport(NewScreenPos(0, 0), NewScreenSize(5, 5))
	vp.DrawPixel(NewPixel('A', NewScreenPos(1, 1)))

	if got := vp.Pixels(); len(got) != 1 {
		t.Fatalf("first Pixels() returned %d pixels, expected 1", len(got))
	}

	second := vp.Pixels()
	if second == nil || len(second) != 0 {
		t.Errorf("second Pixels() = %#v, expected empty slice", second)
	}
	if vp.Len() != 0 {
		t.Errorf("Len() = %d after drain, expected 0", vp.Len())
	}
}

func TestViewportKeepsInsertionOrderAndDuplicates(t *testing.T) {
	vp := NewViewport(NewScreenPos(1, 1), NewScreenSize(5, 5))
	vp.DrawPixel(NewPixel('a', NewScreenPos(0, 0)))
	vp.DrawPixel(NewPixel('b', NewScreenPos(2, 0)))
	vp.DrawPixel(NewPixel('c', NewScreenPos(0, 0)))

	got := vp.Pixels()
	glyphs := []rune{got[0].Glyph, got[1].Glyph, got[2].Glyph}
	if string(glyphs) != "abc" {
		t.Errorf("order = %q, expected %q", string(glyphs), "abc")
	}
	if got[0].Pos != got[2].Pos {
		t.Errorf("duplicate positions should both be kept: %+v vs %+v", got[0].Pos, got[2].Pos)
	}
}

func TestViewportDrawText(t *testing.T) {
	vp := NewViewport(NewScreenPos(2, 3), NewScreenSize(10, 2))
	vp.DrawText(NewScreenPos(1, 1), "héy")

	want := []Pixel{
		{Glyph: 'h', Pos: ScreenPos{3, 4}},
		{Glyph: 'é', Pos: ScreenPos{4, 4}},
		{Glyph: 'y', Pos: ScreenPos{5, 4}},
	}
	if got := vp.Pixels(); !reflect.DeepEqual(got, want) {
		t.Errorf("DrawText pixels = %+v, expected %+v", got, want)
	}
}

func TestViewportFill(t *testing.T) {
	vp := NewViewport(NewScreenPos(1, 2), NewScreenSize(3, 2))
	vp.Fill('.')

	if vp.Len() != 6 {
		t.Fatalf("Len() = %d, expected 6", vp.Len())
	}
	pixels := vp.Pixels()
	if pixels[0].Pos != (ScreenPos{1, 2}) {
		t.Errorf("first fill pixel at %+v, expected (1, 2)", pixels[0].Pos)
	}
	if pixels[5].Pos != (ScreenPos{3, 3}) {
		t.Errorf("last fill pixel at %+v, expected (3, 3)", pixels[5].Pos)
	}
}

func TestCameraViewportEndToEnd(t *testing.T) {
	cam := NewCamera(NewWorldPos(30, 30), NewWorldSize(6, 6))
	vp := NewViewport(NewScreenPos(2, 2), NewScreenSize(6, 6))

	box := cam.BoundingBox()
	vp.DrawPixel(NewPixel('A', cam.ToScreen(NewWorldPos(box.MinX(), box.MinY()))))

	want := []Pixel{{Glyph: 'A', Pos: ScreenPos{2, 2}}}
	if got := vp.Pixels(); !reflect.DeepEqual(got, want) {
		t.Errorf("Pixels() = %+v, expected %+v", got, want)
	}
}
