package voxel

import "testing"

func TestClassification(t *testing.T) {
	tests := []struct {
		block       Block
		transparent bool
		solid       bool
	}{
		{Air, true, false},
		{Water, true, false},
		{Grass, false, true},
		{Dirt, false, true},
		{Stone, false, true},
		{Wood, false, true},
		{Leaves, false, true},
		{Sand, false, true},
		{Unknown, false, false},
	}

	for _, tt := range tests {
		if got := Transparent(tt.block); got != tt.transparent {
			t.Errorf("Transparent(%s) = %v, esperado %v", tt.block.Name(), got, tt.transparent)
		}
		if got := Solid(tt.block); got != tt.solid {
			t.Errorf("Solid(%s) = %v, esperado %v", tt.block.Name(), got, tt.solid)
		}
	}
}

func TestUnknownIsNotAir(t *testing.T) {
	if Unknown == Air {
		t.Fatal("Unknown não pode coincidir com Air")
	}
	for _, b := range Placeable {
		if b == Unknown {
			t.Fatal("Unknown não pode estar na paleta colocável")
		}
	}
}

func TestColors(t *testing.T) {
	if c := ColorOf(Water); c.A == 255 {
		t.Error("Water deveria ter alpha parcial")
	}
	for _, b := range Placeable {
		if b == Water {
			continue
		}
		if c := ColorOf(b); c.A != 255 {
			t.Errorf("%s deveria ser opaco, alpha = %d", b.Name(), c.A)
		}
	}
	if c := ColorOf(Unknown); c != (Color{255, 0, 255, 255}) {
		t.Errorf("ColorOf(Unknown) = %+v, esperado magenta", c)
	}
}

func TestShaded(t *testing.T) {
	c := Shaded(Color{100, 200, 50, 150}, 0.5)
	want := Color{50, 100, 25, 150}
	if c != want {
		t.Errorf("Shaded = %+v, esperado %+v (alpha preservado)", c, want)
	}
}
