package msg

import (
	"strings"
	"testing"
)

func TestLocalizerTurkish(t *testing.T) {
	loc := NewLocalizer(LanguageTr)
	if got := loc.T(TaskTitleRequired); got != "Görev başlığı zorunludur" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestLocalizerEnglish(t *testing.T) {
	loc := NewLocalizer(LanguageEn)
	if got := loc.T(TaskTitleRequired); got != "Task title is required" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestUnknownLanguageFallsBackToTurkish(t *testing.T) {
	loc := NewLocalizer("de")
	if got := loc.T(TaskTitleRequired); got != "Görev başlığı zorunludur" {
		t.Fatalf("expected Turkish fallback, got %q", got)
	}
}

func TestUnknownKeyReturnsVerbatim(t *testing.T) {
	loc := NewLocalizer(LanguageTr)
	if got := loc.T("noSuchKey"); got != "noSuchKey" {
		t.Fatalf("expected verbatim key, got %q", got)
	}
}

func TestTemplateData(t *testing.T) {
	loc := NewLocalizer(LanguageTr)
	got := loc.TD(RetryAfterHint, map[string]interface{}{"Seconds": 30})
	if !strings.Contains(got, "30") {
		t.Fatalf("expected substituted seconds, got %q", got)
	}
}
