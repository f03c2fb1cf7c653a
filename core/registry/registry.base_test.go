package registry

import (
	"errors"
	"testing"
)

func TestRegisterAndGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("answer", 42)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if !isNew {
		t.Error("first Register should report a new item")
	}

	value, exists := r.Get("answer")
	if !exists || value != 42 {
		t.Errorf("Get returned (%d, %v), want (42, true)", value, exists)
	}

	isNew, err = r.Register("answer", 7)
	if err != nil {
		t.Fatalf("Register overwrite failed: %v", err)
	}
	if isNew {
		t.Error("overwriting Register should report an existing item")
	}
	if value, _ := r.Get("answer"); value != 7 {
		t.Errorf("overwrite did not take, got %d", value)
	}
}

func TestRegisterEmptyName(t *testing.T) {
	r := NewRegistry[int]()
	if _, err := r.Register("", 1); err == nil {
		t.Error("expected an error for an empty name")
	}
}

func TestGetOrCreate(t *testing.T) {
	r := NewRegistry[string]()

	calls := 0
	creator := func() (string, error) {
		calls++
		return "created", nil
	}

	for i := 0; i < 2; i++ {
		value, err := r.GetOrCreate("item", creator)
		if err != nil {
			t.Fatalf("GetOrCreate failed: %v", err)
		}
		if value != "created" {
			t.Errorf("unexpected value %q", value)
		}
	}
	if calls != 1 {
		t.Errorf("creator ran %d times, want 1", calls)
	}

	failing := func() (string, error) { return "", errors.New("boom") }
	if _, err := r.GetOrCreate("broken", failing); err == nil {
		t.Error("expected the creator error to propagate")
	}
}

func TestClear(t *testing.T) {
	r := NewRegistry[int]()
	if _, err := r.Register("item", 1); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	cleaned := false
	deleted, err := r.Clear("item", func(int) error {
		cleaned = true
		return nil
	})
	if err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if !deleted || !cleaned {
		t.Errorf("Clear returned deleted=%v cleaned=%v, want both true", deleted, cleaned)
	}

	if deleted, _ := r.Clear("item", nil); deleted {
		t.Error("clearing a missing item should report deleted=false")
	}
}

func TestClearAll(t *testing.T) {
	r := NewRegistry[int]()
	for _, name := range []string{"a", "b", "c"} {
		if _, err := r.Register(name, 1); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
	}

	count, err := r.ClearAll(nil)
	if err != nil {
		t.Fatalf("ClearAll failed: %v", err)
	}
	if count != 3 {
		t.Errorf("ClearAll removed %d items, want 3", count)
	}
	if _, exists := r.Get("a"); exists {
		t.Error("items survived ClearAll")
	}
}
