package field

import (
	"errors"
	"testing"
)

func TestFromSlice(t *testing.T) {
	src := []float64{1, 2, 3, 4, 5, 6}
	a, err := FromSlice(src, 2, 3)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	src[0] = 99
	if a.At(0, 0) != 1 {
		t.Error("FromSlice did not copy its input")
	}
	if a.At(1, 2) != 6 {
		t.Errorf("At(1,2) = %v, want 6", a.At(1, 2))
	}

	if _, err := FromSlice(src, 4, 2); !errors.Is(err, ErrBadShape) {
		t.Errorf("expected ErrBadShape for size mismatch, got %v", err)
	}
	if _, err := New[float64](2, -1); !errors.Is(err, ErrBadShape) {
		t.Errorf("expected ErrBadShape for negative dim, got %v", err)
	}
}

func TestReshapeAndClone(t *testing.T) {
	a := Vector(1.0, 2.0, 3.0, 4.0)

	b, err := a.Reshape(2, 2)
	if err != nil {
		t.Fatalf("Reshape failed: %v", err)
	}
	if b.At(1, 0) != 3 {
		t.Errorf("At(1,0) = %v, want 3", b.At(1, 0))
	}

	c := b.Clone()
	c.Set(42, 0, 0)
	if b.At(0, 0) != 1 {
		t.Error("Clone shares data with original")
	}

	if _, err := a.Reshape(3); !errors.Is(err, ErrBadShape) {
		t.Errorf("expected ErrBadShape, got %v", err)
	}
}

func TestShapeIsCopied(t *testing.T) {
	a, _ := New[float64](2, 3)
	s := a.Shape()
	s[0] = 7
	if a.Shape()[0] != 2 {
		t.Error("Shape exposes internal slice")
	}

	d := a.Data()
	d[0] = 5
	if a.At(0, 0) != 0 {
		t.Error("Data exposes internal slice")
	}
}

func TestItem(t *testing.T) {
	if v, err := Of(3.5).Item(); err != nil || v != 3.5 {
		t.Errorf("Item() = %v, %v", v, err)
	}
	if _, err := Vector(1.0, 2.0).Item(); !errors.Is(err, ErrBadShape) {
		t.Errorf("expected ErrBadShape, got %v", err)
	}
}

func TestMap(t *testing.T) {
	a := Vector(1.0, -2.0)
	b := Map(a, func(v float64) complex128 { return complex(v, v) })
	if b.At(1) != complex(-2, -2) {
		t.Errorf("Map result %v", b.At(1))
	}
	if !SameShape(a.Shape(), b.Shape()) {
		t.Error("Map changed shape")
	}
}

func TestMeshgrid(t *testing.T) {
	X, Y := Meshgrid([]float64{1, 2, 3}, []float64{10, 20})

	if want := []int{2, 3}; !SameShape(X.Shape(), want) || !SameShape(Y.Shape(), want) {
		t.Fatalf("shapes %v %v, want %v", X.Shape(), Y.Shape(), want)
	}
	if X.At(1, 2) != 3 || Y.At(1, 2) != 20 {
		t.Errorf("X(1,2)=%v Y(1,2)=%v", X.At(1, 2), Y.At(1, 2))
	}
}

func TestAtPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Vector(1.0).At(1)
}
