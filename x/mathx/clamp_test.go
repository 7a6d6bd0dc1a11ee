package mathx

import "testing"

func TestClamp(t *testing.T) {
	if Clamp(150, 1, 100) != 100 || Clamp(0, 1, 100) != 1 || Clamp(30, 1, 100) != 30 {
		t.Fatal("int clamp")
	}
	if Clamp(0.9, 1.0, 0.0) != 0.9 {
		t.Fatal("swapped bounds")
	}
	if Clamp[int16](70, 4, 60) != 60 {
		t.Fatal("int16 clamp")
	}
}
