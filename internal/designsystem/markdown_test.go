package designsystem

import (
	"strings"
	"testing"
)

func TestFormatMarkdown_ContainsEveryCategory(t *testing.T) {
	out := FormatMarkdown(testDocument())

	for _, sec := range testDocument().Categories {
		if !strings.Contains(out, "## "+sec.Name) {
			t.Errorf("markdown missing category header %q", sec.Name)
		}
	}
}

func TestFormatMarkdown_MarksAbsentAndEmpty(t *testing.T) {
	out := FormatMarkdown(testDocument())

	if !strings.Contains(out, "could not be loaded") {
		t.Error("missing category should be marked as unavailable")
	}
	if !strings.Contains(out, "No matching guidance found") {
		t.Error("empty category should be marked as no matches")
	}
}

func TestFormatMarkdown_Deterministic(t *testing.T) {
	first := FormatMarkdown(testDocument())
	second := FormatMarkdown(testDocument())
	if first != second {
		t.Error("rendering the same document twice must produce identical output")
	}
}

func TestFormatMarkdown_FieldsInColumnOrder(t *testing.T) {
	out := FormatMarkdown(testDocument())

	palette := strings.Index(out, "- **palette:**")
	keywords := strings.Index(out, "- **keywords:**")
	if palette == -1 || keywords == -1 {
		t.Fatal("expected field bullets in output")
	}
	if palette > keywords {
		t.Error("fields should render in source column order")
	}
}

func TestFormatPageOverride_Header(t *testing.T) {
	out := formatPageOverride(testDocument(), "Dashboard", "dark dashboard analytics")

	if !strings.Contains(out, "Page Overrides: Dashboard") {
		t.Error("page override missing page title")
	}
	if !strings.Contains(out, "take precedence over MASTER.md") {
		t.Error("page override missing precedence note")
	}
}
