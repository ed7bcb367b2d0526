package calcx_test

import (
	"testing"

	"github.com/nsavage/calcx"
)

func TestContextSetLookup(t *testing.T) {
	ctx := calcx.NewContext()
	if _, ok := ctx.Lookup("x"); ok {
		t.Fatal("Lookup on empty Context found a binding")
	}
	ctx.Set("x", calcx.Int(3))
	v, ok := ctx.Lookup("x")
	if !ok || v.Float64() != 3 {
		t.Fatalf("Lookup(%q) = (%v, %v), want (3, true)", "x", v, ok)
	}
}

func TestContextClone(t *testing.T) {
	ctx := calcx.NewContext()
	ctx.Set("x", calcx.Int(1))
	clone := ctx.Clone()
	clone.Set("x", calcx.Int(2))
	clone.Set("y", calcx.Int(3))

	if v, _ := ctx.Lookup("x"); v.Float64() != 1 {
		t.Errorf("mutating clone changed original's x to %v", v)
	}
	if _, ok := ctx.Lookup("y"); ok {
		t.Error("mutating clone added y to the original")
	}
	if v, _ := clone.Lookup("x"); v.Float64() != 2 {
		t.Errorf("clone.Lookup(x) = %v, want 2", v)
	}
}

func TestContextClear(t *testing.T) {
	ctx := calcx.NewContext()
	ctx.Set("x", calcx.Int(1))
	ctx.Clear()
	if _, ok := ctx.Lookup("x"); ok {
		t.Error("x still bound after Clear")
	}
}

func TestDefaultContextHelpers(t *testing.T) {
	calcx.ClearVariables()
	defer calcx.ClearVariables()

	calcx.SetVariable("a", calcx.Int(7))
	v, err := calcx.Eval("a+1")
	if err != nil {
		t.Fatalf("Eval(a+1) returned error: %v", err)
	}
	if v.Float64() != 8 {
		t.Errorf("Eval(a+1) = %v, want 8", v)
	}
}

func TestEvaluateWithX(t *testing.T) {
	calcx.ClearVariables()
	defer calcx.ClearVariables()

	y, err := calcx.EvaluateWithX("x^2", 3)
	if err != nil {
		t.Fatalf("EvaluateWithX returned error: %v", err)
	}
	if y != 9 {
		t.Errorf("EvaluateWithX(x^2, 3) = %v, want 9", y)
	}
	if _, ok := calcx.DefaultContext.Lookup("x"); ok {
		t.Error("EvaluateWithX leaked x into DefaultContext")
	}
}
