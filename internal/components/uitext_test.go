package components

import "testing"

func TestUITextPromptLifecycle(t *testing.T) {
	text := NewUIText()

	if got, _ := text.Visible(); got != "" {
		t.Errorf("New UIText should start hidden, shows %q", got)
	}

	text.SetText("Press E to open door")
	if got, notice := text.Visible(); got != "Press E to open door" || notice {
		t.Errorf("Expected prompt, got %q (notice=%v)", got, notice)
	}

	text.HideText()
	if got, _ := text.Visible(); got != "" {
		t.Errorf("HideText should clear the prompt, shows %q", got)
	}
}

func TestUITextNoticeOutlivesHide(t *testing.T) {
	text := NewUIText()
	text.NoticeDuration = 1.0

	text.SetText("Hold E to pick up Rust Key")
	text.Announce("Rust Key added to inventory")
	text.HideText()

	got, notice := text.Visible()
	if got != "Rust Key added to inventory" || !notice {
		t.Errorf("Notice should win over hidden prompt, got %q (notice=%v)", got, notice)
	}

	text.Update(0.6)
	if got, _ := text.Visible(); got != "Rust Key added to inventory" {
		t.Errorf("Notice expired too early, shows %q", got)
	}

	text.Update(0.6)
	if got, _ := text.Visible(); got != "" {
		t.Errorf("Notice should expire after its duration, shows %q", got)
	}
}
