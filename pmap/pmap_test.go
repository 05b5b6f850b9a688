package pmap_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/grafsm/pmap"
)

// TestAssoc_Required verifies the fail-fast miss semantics.
func TestAssoc_Required(t *testing.T) {
	m := pmap.NewAssoc[string, int]()
	if _, err := m.Get("absent"); !errors.Is(err, pmap.ErrKeyNotFound) {
		t.Errorf("miss on required map: want ErrKeyNotFound, got %v", err)
	}
	if m.Has("absent") {
		t.Error("Has(absent) = true; want false")
	}

	if err := m.Put("a", 7); err != nil {
		t.Fatal(err)
	}
	v, err := m.Get("a")
	if err != nil || v != 7 {
		t.Errorf("Get(a) = (%d, %v); want (7, nil)", v, err)
	}

	// Overwrite.
	if err := m.Put("a", 8); err != nil {
		t.Fatal(err)
	}
	if v, _ := m.Get("a"); v != 8 {
		t.Errorf("Get(a) after overwrite = %d; want 8", v)
	}
	if m.Len() != 1 {
		t.Errorf("Len = %d; want 1", m.Len())
	}
}

// TestAssoc_Optional verifies WithDefault miss semantics.
func TestAssoc_Optional(t *testing.T) {
	m := pmap.NewAssoc[int, string](pmap.WithDefault("white"))
	v, err := m.Get(42)
	if err != nil || v != "white" {
		t.Errorf("optional miss = (%q, %v); want (white, nil)", v, err)
	}
	if m.Has(42) {
		t.Error("default value must not count as an explicit binding")
	}
}

// TestSlice covers dense access, growth and key validation.
func TestSlice(t *testing.T) {
	m := pmap.NewSlice[int](2)
	if _, err := m.Get(-1); !errors.Is(err, pmap.ErrNegativeKey) {
		t.Errorf("negative key: want ErrNegativeKey, got %v", err)
	}
	if _, err := m.Get(0); !errors.Is(err, pmap.ErrKeyNotFound) {
		t.Errorf("unset key: want ErrKeyNotFound, got %v", err)
	}

	if err := m.Put(5, 99); err != nil {
		t.Fatal(err)
	}
	if v, err := m.Get(5); err != nil || v != 99 {
		t.Errorf("Get(5) = (%d, %v); want (99, nil)", v, err)
	}
	if !m.Has(5) || m.Has(4) {
		t.Error("Has after growth is wrong")
	}

	opt := pmap.NewSlice[int](0, pmap.WithDefault(-1))
	if v, err := opt.Get(10); err != nil || v != -1 {
		t.Errorf("optional slice miss = (%d, %v); want (-1, nil)", v, err)
	}
}

// TestFuncAndConst covers the read-only flavors.
func TestFuncAndConst(t *testing.T) {
	double := pmap.NewFunc(func(k int) int { return 2 * k })
	if v, err := double.Get(21); err != nil || v != 42 {
		t.Errorf("Func Get(21) = (%d, %v); want (42, nil)", v, err)
	}
	if err := double.Put(1, 1); !errors.Is(err, pmap.ErrReadOnly) {
		t.Errorf("Func Put: want ErrReadOnly, got %v", err)
	}

	c := pmap.NewConst[int]("gray")
	if v, _ := c.Get(123); v != "gray" {
		t.Errorf("Const Get = %q; want gray", v)
	}
	if err := c.Put(0, "black"); err != nil {
		t.Errorf("Const Put should discard writes, got %v", err)
	}
}

// The concrete flavors must satisfy the contracts.
var (
	_ pmap.ReadWrite[string, int] = (*pmap.Assoc[string, int])(nil)
	_ pmap.ReadWrite[int, int]    = (*pmap.Slice[int])(nil)
	_ pmap.ReadWrite[int, int]    = (*pmap.Func[int, int])(nil)
	_ pmap.ReadWrite[int, string] = (*pmap.Const[int, string])(nil)
)
