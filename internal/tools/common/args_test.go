package common

import "testing"

func TestStringArg(t *testing.T) {
	args := map[string]interface{}{
		"title":  "Buy milk",
		"number": 42,
	}

	if got := StringArg(args, "title"); got != "Buy milk" {
		t.Errorf("Expected 'Buy milk', got %s", got)
	}
	if got := StringArg(args, "missing"); got != "" {
		t.Errorf("Expected empty string for missing key, got %s", got)
	}
	if got := StringArg(args, "number"); got != "" {
		t.Errorf("Expected empty string for non-string value, got %s", got)
	}
}

func TestBoolArg(t *testing.T) {
	args := map[string]interface{}{
		"archived": true,
		"title":    "text",
	}

	if !BoolArg(args, "archived", false) {
		t.Error("Expected true for present boolean")
	}
	if BoolArg(args, "missing", false) {
		t.Error("Expected fallback false for missing key")
	}
	if !BoolArg(args, "title", true) {
		t.Error("Expected fallback true for non-boolean value")
	}
}

func TestIntArg(t *testing.T) {
	args := map[string]interface{}{
		"priority": float64(2),
		"count":    7,
		"title":    "text",
	}

	if got := IntArg(args, "priority", 1); got != 2 {
		t.Errorf("Expected 2 for JSON number, got %d", got)
	}
	if got := IntArg(args, "count", 1); got != 7 {
		t.Errorf("Expected 7 for int value, got %d", got)
	}
	if got := IntArg(args, "missing", 1); got != 1 {
		t.Errorf("Expected fallback 1 for missing key, got %d", got)
	}
	if got := IntArg(args, "title", 3); got != 3 {
		t.Errorf("Expected fallback 3 for non-numeric value, got %d", got)
	}
}
