package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestDefaultKeyMap_AllBindingsDefined(t *testing.T) {
	km := DefaultKeyMap()

	bindings := []struct {
		name    string
		binding key.Binding
	}{
		{"Quit", km.Quit},
		{"Pause", km.Pause},
		{"Reset", km.Reset},
		{"Input", km.Input},
		{"Submit", km.Submit},
		{"Cancel", km.Cancel},
		{"Up", km.Up},
		{"Down", km.Down},
		{"PageUp", km.PageUp},
		{"PageDown", km.PageDown},
		{"Help", km.Help},
	}

	for _, b := range bindings {
		t.Run(b.name, func(t *testing.T) {
			if !b.binding.Enabled() {
				t.Errorf("expected %s binding to be enabled", b.name)
			}
			if len(b.binding.Keys()) == 0 {
				t.Errorf("expected %s binding to have at least one key", b.name)
			}
		})
	}
}

func TestDefaultKeyMap_QuitKeys(t *testing.T) {
	km := DefaultKeyMap()

	hasQ := false
	hasCtrlC := false
	for _, k := range km.Quit.Keys() {
		switch k {
		case "q":
			hasQ = true
		case "ctrl+c":
			hasCtrlC = true
		}
	}

	if !hasQ {
		t.Error("expected Quit binding to include 'q'")
	}
	if !hasCtrlC {
		t.Error("expected Quit binding to include 'ctrl+c'")
	}
}

func TestKeyMap_HelpSections(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp() returned no bindings")
	}
	if len(km.FullHelp()) == 0 {
		t.Error("FullHelp() returned no binding groups")
	}
}
