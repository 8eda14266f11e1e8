package core

import "testing"

func TestCameraToScreenAtMin(t *testing.T) {
	cam := NewCamera(NewWorldPos(30, 30), NewWorldSize(6, 6))
	box := cam.BoundingBox()

	got := cam.ToScreen(NewWorldPos(box.MinX(), box.MinY()))
	if got != (ScreenPos{}) {
		t.Errorf("ToScreen(min) = %+v, expected (0, 0)", got)
	}
}

func TestCameraToScreenInside(t *testing.T) {
	cam := NewCamera(NewWorldPos(-4, 12), NewWorldSize(10, 8))

	for y := 12; y < 20; y++ {
		for x := -4; x < 6; x++ {
			p := NewWorldPos(x, y)
			got := cam.ToScreen(p)
			want := ScreenPos{X: p.X + 4, Y: p.Y - 12}
			if got != want {
				t.Fatalf("ToScreen(%+v) = %+v, expected %+v", p, got, want)
			}
		}
	}
}

func TestCameraToScreenOutsideIsNotClipped(t *testing.T) {
	cam := NewCamera(NewWorldPos(10, 10), NewWorldSize(4, 4))

	tests := []struct {
		name string
		p    WorldPos
		want ScreenPos
	}{
		{"left of box", NewWorldPos(7, 11), ScreenPos{X: -3, Y: 1}},
		{"above box", NewWorldPos(12, 0), ScreenPos{X: 2, Y: -10}},
		{"past max", NewWorldPos(14, 20), ScreenPos{X: 4, Y: 10}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := cam.ToScreen(tc.p); got != tc.want {
				t.Errorf("ToScreen(%+v) = %+v, expected %+v", tc.p, got, tc.want)
			}
			if cam.Visible(tc.p) {
				t.Errorf("Visible(%+v) = true, expected false", tc.p)
			}
		})
	}
}

func TestCameraMove(t *testing.T) {
	cam := NewCamera(NewWorldPos(0, 0), NewWorldSize(8, 4))

	cam.MoveTo(NewWorldPos(5, 5))
	if got := cam.ToScreen(NewWorldPos(5, 5)); got != (ScreenPos{}) {
		t.Errorf("after MoveTo, ToScreen(5, 5) = %+v, expected (0, 0)", got)
	}

	cam.MoveBy(-2, 1)
	box := cam.BoundingBox()
	if box.MinX() != 3 || box.MinY() != 6 {
		t.Errorf("after MoveBy, min = (%d, %d), expected (3, 6)", box.MinX(), box.MinY())
	}
	if cam.Size() != NewWorldSize(8, 4) {
		t.Errorf("Size() = %+v, expected {8 4}", cam.Size())
	}
}

func TestCameraTrack(t *testing.T) {
	cam := NewCamera(NewWorldPos(0, 0), NewWorldSize(10, 5))
	target := NewWorldPos(50, 20)

	cam.Track(target)

	got := cam.ToScreen(target)
	if got != (ScreenPos{X: 5, Y: 2}) {
		t.Errorf("tracked target offset = %+v, expected (5, 2)", got)
	}
	if !cam.Visible(target) {
		t.Error("tracked target should be visible")
	}
}
