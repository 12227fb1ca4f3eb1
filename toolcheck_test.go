package papiext

import (
	"strings"
	"testing"
)

func TestCheckToolAvailable(t *testing.T) {
	if err := CheckToolAvailable("definitely-not-a-real-tool-12345"); err == nil {
		t.Error("expected error for missing tool")
	} else if !strings.Contains(err.Error(), "definitely-not-a-real-tool-12345 not found in PATH") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestCheckRequiredTools(t *testing.T) {
	missing := "definitely-not-a-real-tool-12345"
	other := "another-missing-tool-67890"

	if err := CheckRequiredTools(nil); err != nil {
		t.Errorf("expected no error for empty requirements, got %v", err)
	}

	if err := CheckRequiredTools([]ToolRequirement{{Name: missing, Optional: true}}); err != nil {
		t.Errorf("optional tools should not cause errors, got %v", err)
	}

	err := CheckRequiredTools([]ToolRequirement{{Name: missing, Purpose: "registry"}})
	if err == nil || err.Error() != missing+" (registry) not found in PATH" {
		t.Errorf("unexpected single-tool error: %v", err)
	}

	err = CheckRequiredTools([]ToolRequirement{{Name: missing}, {Name: other}})
	if err == nil || !strings.HasPrefix(err.Error(), "missing required tools: ") {
		t.Errorf("unexpected multi-tool error: %v", err)
	}
}
