package version

// Static signal tables for the plugin-settings heuristic, kept apart from
// the scoring algorithm so the algorithm stays a pure function of
// (sections, keys). All names are compared lowercase.

// v1KeyboardKeys are key names expected under a v1 [Keyboard] section.
var v1KeyboardKeys = newSet(
	"lightstage", "tadvisor", "sirentoggle",
	"tone1", "tone2", "tone3", "tone4",
	"auxtoggle", "manual", "horn", "steadyburn", "interiorlt",
	"indl", "indr", "hazard", "lockall", "uimodifier", "uikey",
)

// v1SettingsKeys appear under [Settings] only in v1 installs.
var v1SettingsKeys = newSet(
	"sirencontrolnondls", "ailightscontrol", "indenabled", "brakelightsenabled",
)

// v2SettingsKeys appear under [Settings] only in v2 installs.
var v2SettingsKeys = newSet(
	"audioname", "audioref", "disabledcontrols", "extrapatch", "devmode", "brakelights",
)

// v2ControlSections are the per-control sections a v2 install splits its
// bindings into; two or more of them is a strong v2 signal.
var v2ControlSections = newSet(
	"lockall", "killall", "intlt", "indl", "indr", "hzrd",
	"cycle_stages", "reverse_cycle_stages", "toggle_stages", "toggle_stage3",
	"cycle_ta", "reverse_cycle_ta",
	"audio_horn", "toggle_siren", "cycle_siren", "reverse_cycle_siren",
	"audio_siren1_manual", "audio_siren1", "audio_siren2", "audio_siren3",
)

func newSet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
