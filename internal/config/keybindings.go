package config

import "strings"

// Keybinding is a single key-to-description pair shown in help.
type Keybinding struct {
	Key         string
	Description string
}

// KeybindingSection groups related keybindings for the help overlay.
type KeybindingSection struct {
	Title    string
	Bindings []Keybinding
}

// KeybindRegistry resolves keys to actions and back. It is built once
// from a loaded configuration and queried on every key press.
type KeybindRegistry struct {
	keysByAction map[string][]string
	actionByKey  map[string]string
	normalizer   *KeyNormalizer
}

// NewKeybindRegistry indexes the keybindings of cfg.
func NewKeybindRegistry(cfg *UserConfig) *KeybindRegistry {
	r := &KeybindRegistry{
		keysByAction: make(map[string][]string),
		actionByKey:  make(map[string]string),
		normalizer:   NewKeyNormalizer(),
	}
	for action, keys := range cfg.Keybindings.Panes {
		for _, key := range keys {
			for _, norm := range r.normalizer.NormalizeKey(key) {
				r.keysByAction[action] = append(r.keysByAction[action], norm)
				r.actionByKey[norm] = action
			}
		}
	}
	return r
}

// GetKeys returns the normalized keys bound to action, or nil.
func (r *KeybindRegistry) GetKeys(action string) []string {
	return r.keysByAction[action]
}

// GetAction returns the action bound to key, or "".
func (r *KeybindRegistry) GetAction(key string) string {
	for _, norm := range r.normalizer.NormalizeKey(key) {
		if action, ok := r.actionByKey[norm]; ok {
			return action
		}
	}
	return ""
}

// GetKeysForDisplay formats the keys bound to action for help text.
func (r *KeybindRegistry) GetKeysForDisplay(action string) string {
	keys := r.keysByAction[action]
	if len(keys) == 0 {
		return ""
	}
	display := make([]string, 0, len(keys))
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if !seen[k] {
			seen[k] = true
			display = append(display, k)
		}
	}
	return strings.Join(display, ", ")
}

// KeyNormalizer canonicalizes key notation so config files can spell
// keys loosely ("Ctrl+A", "Return") while lookups stay exact.
type KeyNormalizer struct {
	aliases map[string][]string
}

// NewKeyNormalizer returns a normalizer with the common aliases.
func NewKeyNormalizer() *KeyNormalizer {
	return &KeyNormalizer{
		aliases: map[string][]string{
			"return": {"return", "enter"},
			"enter":  {"enter", "return"},
			"esc":    {"esc", "escape"},
			"escape": {"escape", "esc"},
			"space":  {"space", " "},
		},
	}
}

// NormalizeKey lowercases key and expands aliases, returning every
// spelling a terminal event might arrive as.
func (n *KeyNormalizer) NormalizeKey(key string) []string {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return nil
	}
	if alts, ok := n.aliases[key]; ok {
		return alts
	}
	// Normalize modifier ordering: ctrl before shift before alt.
	if strings.Contains(key, "+") {
		parts := strings.Split(key, "+")
		base := parts[len(parts)-1]
		mods := parts[:len(parts)-1]
		ordered := make([]string, 0, len(parts))
		for _, want := range []string{"ctrl", "alt", "shift"} {
			for _, m := range mods {
				if m == want {
					ordered = append(ordered, m)
				}
			}
		}
		ordered = append(ordered, base)
		key = strings.Join(ordered, "+")
	}
	return []string{key}
}

// ValidateKey reports whether key is a plausible binding and, if not,
// why it was rejected.
func (n *KeyNormalizer) ValidateKey(key string) (bool, string) {
	if strings.TrimSpace(key) == "" {
		return false, "key must not be empty"
	}
	if strings.HasSuffix(key, "+") {
		return false, "key must follow its modifiers"
	}
	return true, ""
}

// GetKeybindings returns the help sections. A registry supplies the
// user's actual bindings; nil falls back to the defaults.
func GetKeybindings(registry *KeybindRegistry) []KeybindingSection {
	if registry == nil {
		registry = NewKeybindRegistry(DefaultConfig())
	}

	sections := []KeybindingSection{}

	panes := KeybindingSection{Title: "PANES"}
	for _, action := range []string{
		"split_horizontal", "split_vertical", "close_pane",
		"next_pane", "prev_pane", "swap_pane",
	} {
		addBinding(&panes, registry, action)
	}
	if len(panes.Bindings) > 0 {
		sections = append(sections, panes)
	}

	moves := KeybindingSection{Title: "MOVEMENT"}
	for _, action := range []string{"move_left", "move_right", "move_up", "move_down"} {
		addBinding(&moves, registry, action)
	}
	if len(moves.Bindings) > 0 {
		sections = append(sections, moves)
	}

	layout := KeybindingSection{Title: "LAYOUT"}
	for _, action := range []string{"equalize", "toggle_snap"} {
		addBinding(&layout, registry, action)
	}
	layout.Bindings = append(layout.Bindings,
		Keybinding{"Mouse drag on border", "Resize panes"},
		Keybinding{"Mouse drag on tab bar", "Move pane (drop zones)"},
	)
	sections = append(sections, layout)

	system := KeybindingSection{Title: "SYSTEM"}
	for _, action := range []string{"toggle_help", "quit"} {
		addBinding(&system, registry, action)
	}
	sections = append(sections, system)

	return sections
}

func addBinding(section *KeybindingSection, registry *KeybindRegistry, action string) {
	keys := registry.GetKeysForDisplay(action)
	if keys == "" {
		return
	}
	section.Bindings = append(section.Bindings, Keybinding{
		Key:         keys,
		Description: ActionDescriptions[action],
	})
}
