package tui

import "testing"

func TestDetectTheme_FlagWins(t *testing.T) {
	t.Setenv("BENTO_THEME", "dark")
	if got := DetectTheme("light"); got.Name != "light" {
		t.Errorf("DetectTheme(\"light\") = %s, want light", got.Name)
	}
}

func TestDetectTheme_Env(t *testing.T) {
	t.Setenv("BENTO_THEME", "light")
	if got := DetectTheme(""); got.Name != "light" {
		t.Errorf("DetectTheme() with BENTO_THEME=light = %s, want light", got.Name)
	}
}

func TestDetectTheme_Default(t *testing.T) {
	t.Setenv("BENTO_THEME", "")
	t.Setenv("COLORFGBG", "")
	if got := DetectTheme(""); got.Name != "dark" {
		t.Errorf("DetectTheme() default = %s, want dark", got.Name)
	}
}
