package util

import "testing"

func TestDict(t *testing.T) {
	dict := NewDict[string, int](10)
	dict["a"] = 1
	dict.Set("b", 2)

	if dict.Length() != 2 {
		t.Errorf("length = %v; want 2", dict.Length())
	}
	if !dict.ContainsKey("a") || dict.ContainsKey("c") {
		t.Error("ContainsKey wrong")
	}
	if dict.Get("b") != 2 {
		t.Errorf("Get(b) = %v; want 2", dict.Get("b"))
	}
	dict.Delete("a")
	if dict.ContainsKey("a") {
		t.Error("a still present after Delete")
	}
}

func TestList(t *testing.T) {
	list := NewList[int](4)
	list.Add(10)
	list.Add(20)
	list.Add(30)

	if list.Length() != 3 {
		t.Errorf("length = %v; want 3", list.Length())
	}
	if list.Get(1) != 20 {
		t.Errorf("Get(1) = %v; want 20", list.Get(1))
	}
	list.Set(1, 25)
	if list[1] != 25 {
		t.Errorf("list[1] = %v; want 25", list[1])
	}

	list.Clear()
	if list.Length() != 0 {
		t.Errorf("length after Clear = %v; want 0", list.Length())
	}
	list.Add(1)
	if list.Length() != 1 || list[0] != 1 {
		t.Error("list unusable after Clear")
	}
}

func TestArray(t *testing.T) {
	arr := NewArray[float64](3)
	if arr.Length() != 3 {
		t.Errorf("length = %v; want 3", arr.Length())
	}
	for i := 0; i < arr.Length(); i++ {
		if arr[i] != 0.0 {
			t.Errorf("arr[%v] = %v; want 0", i, arr[i])
		}
	}
	arr.Set(2, 7.5)
	if arr.Get(2) != 7.5 {
		t.Errorf("Get(2) = %v; want 7.5", arr.Get(2))
	}
}

func TestOptional(t *testing.T) {
	some := Some(42)
	if !some.HasValue() || some.Value != 42 {
		t.Errorf("Some(42) = %v", some)
	}
	none := None[int]()
	if none.HasValue() {
		t.Error("None has a value")
	}
}

func TestTupleTriple(t *testing.T) {
	tup := MakeTuple(1, "x")
	if tup.A != 1 || tup.B != "x" {
		t.Errorf("tuple = %v", tup)
	}
	tri := MakeTriple(1, "x", 2.5)
	if tri.A != 1 || tri.B != "x" || tri.C != 2.5 {
		t.Errorf("triple = %v", tri)
	}
}
