// Package model defines the value types shared by the parsers, converters
// and analyzer. Every type is a plain record with no identity beyond its
// fields; parsers and converters construct fresh instances and never alias
// caller-owned data.
package model

// Version identifies which DLS schema generation a document uses.
type Version string

const (
	VersionV1      Version = "v1"
	VersionV2      Version = "v2"
	VersionUnknown Version = "unknown"
)

// String returns the display name of the version.
func (v Version) String() string {
	switch v {
	case VersionV1:
		return "DLS v1"
	case VersionV2:
		return "DLS v2"
	default:
		return "unknown"
	}
}

// Document is the tagged union produced by version detection + parsing.
// Exactly one of V1/V2 is non-nil when Version is V1/V2; both are nil for
// VersionUnknown.
type Document struct {
	Version Version
	V1      *DLSv1Data
	V2      *DLSv2Data
}

// SequencedParams holds the shared shape of a siren item's rotation and
// flashiness blocks. Speed is in engine units; Sequencer indexes a 32-bit
// on/off pattern driven by the owning pattern's BPM when SyncToBpm is set.
type SequencedParams struct {
	Delta     float64
	Start     float64
	Speed     float64
	Sequencer int
	Multiples int
	Direction bool
	SyncToBpm bool
}

// CoronaParams describes the light corona of a siren item.
type CoronaParams struct {
	Intensity  float64
	Size       float64
	Pull       float64
	FaceCamera bool
}

// SirenItem is one physical light element within a pattern. It has no id
// field; its position in SirenSettings.Sirens is its only identity.
// A nil Rotation/Flashiness/Corona means the engine default applies, which
// is not the same as a zeroed block.
type SirenItem struct {
	Rotation   *SequencedParams
	Flashiness *SequencedParams
	Corona     *CoronaParams

	Color       string
	Intensity   float64
	LightGroup  int
	Rotate      bool
	Scale       bool
	ScaleFactor float64
	Flash       bool
	Light       bool
	SpotLight   bool
	CastShadows bool
}

// NewSirenItem returns a SirenItem with engine defaults applied.
func NewSirenItem() SirenItem {
	return SirenItem{
		Color:       "0xFFFFFFFF",
		Intensity:   1,
		Scale:       true,
		ScaleFactor: 1,
		Flash:       true,
		Light:       true,
		SpotLight:   true,
	}
}

// Clone returns a deep copy of the item.
func (s SirenItem) Clone() SirenItem {
	out := s
	if s.Rotation != nil {
		r := *s.Rotation
		out.Rotation = &r
	}
	if s.Flashiness != nil {
		f := *s.Flashiness
		out.Flashiness = &f
	}
	if s.Corona != nil {
		c := *s.Corona
		out.Corona = &c
	}
	return out
}

// SirenSettings is one lighting pattern: global timing/falloff numerics,
// four fixed light-channel sequencers and an ordered siren item list.
type SirenSettings struct {
	TimeMultiplier       float64
	LightFalloffMax      float64
	LightFalloffExponent float64
	LightInnerConeAngle  float64
	LightOuterConeAngle  float64
	LightOffset          float64
	TextureName          string

	// SequencerBpm is the tempo, in beats per minute, driving every
	// sequencer in this pattern that has SyncToBpm set.
	SequencerBpm int

	LeftHeadLight           int
	RightHeadLight          int
	LeftTailLight           int
	RightTailLight          int
	LeftHeadLightMultiples  int
	RightHeadLightMultiples int
	LeftTailLightMultiples  int
	RightTailLightMultiples int

	UseRealLights bool

	// Sirens is ordered; conversion and indexing key off list position.
	Sirens []SirenItem
}

// NewSirenSettings returns a SirenSettings with engine defaults applied.
func NewSirenSettings() *SirenSettings {
	return &SirenSettings{
		TimeMultiplier:          1,
		LightFalloffMax:         10,
		LightFalloffExponent:    10,
		LightInnerConeAngle:     2.29061,
		LightOuterConeAngle:     70,
		TextureName:             "VehicleLight_sirenlight",
		SequencerBpm:            220,
		LeftHeadLightMultiples:  1,
		RightHeadLightMultiples: 1,
		LeftTailLightMultiples:  1,
		RightTailLightMultiples: 1,
		UseRealLights:           true,
	}
}

// Clone returns a deep copy of the pattern, or nil for a nil receiver.
func (s *SirenSettings) Clone() *SirenSettings {
	if s == nil {
		return nil
	}
	out := *s
	out.Sirens = make([]SirenItem, len(s.Sirens))
	for i, item := range s.Sirens {
		out.Sirens[i] = item.Clone()
	}
	return &out
}

// WailSetup is v1's wail special mode: a light stage + siren tone pairing
// engaged by the wail key.
type WailSetup struct {
	Enabled    bool
	LightStage string
	SirenTone  string
}

// SteadyBurn is v1's steady-burn special mode.
type SteadyBurn struct {
	Enabled bool
	Pattern string
	Sirens  string
}

// TrafficAdvisoryDirections lists the seven named directional pattern slots
// of a v1 traffic advisory, in document order.
var TrafficAdvisoryDirections = []string{"L", "EL", "CL", "C", "CR", "ER", "R"}

// TrafficAdvisory is v1's rear directional panel configuration.
// Type is one of "off", "default" or "custom".
type TrafficAdvisory struct {
	Type              string
	DivergeOnly       bool
	AutoEnableStages  string
	AutoDisableStages string
	DefaultDirection  string

	// Patterns holds only the directions present in the document, keyed by
	// direction name (see TrafficAdvisoryDirections).
	Patterns map[string]string
}

// DLSv1Data is the schema v1 root: five fixed lighting stages, four fixed
// audio tones plus a horn, special modes and a traffic advisory block.
// A stage being non-nil is decoupled from its enabled flag; a stage can be
// present but disabled.
type DLSv1Data struct {
	Vehicles string

	Stage1Enabled       bool
	Stage2Enabled       bool
	Stage3Enabled       bool
	CustomStage1Enabled bool
	CustomStage2Enabled bool
	Stage3FromCarcols   bool

	SirenUI            string
	PresetSirenOnLeave string
	WailSetup          WailSetup
	SteadyBurn         SteadyBurn

	Tone1                  string
	Tone2                  string
	Tone3                  string
	Tone4                  string
	Horn                   string
	AirHornInterruptsSiren bool

	TrafficAdvisory TrafficAdvisory

	Stage1       *SirenSettings
	Stage2       *SirenSettings
	Stage3       *SirenSettings
	CustomStage1 *SirenSettings
	CustomStage2 *SirenSettings
}

// NewDLSv1Data returns a DLSv1Data with plugin defaults applied.
func NewDLSv1Data() *DLSv1Data {
	return &DLSv1Data{
		Stage1Enabled:      true,
		Stage2Enabled:      true,
		Stage3Enabled:      true,
		PresetSirenOnLeave: "none",
		Tone1:              "VEHICLES_HORNS_SIREN_1",
		Tone2:              "VEHICLES_HORNS_SIREN_2",
		Tone3:              "VEHICLES_HORNS_POLICE_WARNING",
		Tone4:              "VEHICLES_HORNS_AMBULANCE_WARNING",
		Horn:               "SIRENS_AIRHORN",
		TrafficAdvisory: TrafficAdvisory{
			Type:     "off",
			Patterns: map[string]string{},
		},
	}
}

// AudioMode is a v2 named audio entry. v2 allows any number of these where
// v1 had four fixed tone slots plus a horn.
type AudioMode struct {
	Name         string
	Soundset     string
	Soundbank    string
	SoundName    string
	YieldEnabled bool
}

// AudioControlModeEntry binds a list of audio mode names to a toggle/hold
// key within a control group.
type AudioControlModeEntry struct {
	Names  []string
	Toggle string
	Hold   string
}

// AudioControlGroup groups v2 audio modes under shared cycle/toggle
// bindings. Exclusive means at most one mode in the group is active.
type AudioControlGroup struct {
	Name      string
	Cycle     string
	RevCycle  string
	Toggle    string
	Exclusive bool
	Modes     []AudioControlModeEntry
}

// Extra is a numbered vehicle part toggled by a light mode.
type Extra struct {
	ID      int
	Enabled bool
}

// LightMode is a v2 named lighting entry. Conditions carries the mode's
// condition/trigger block as raw XML; this tool does not interpret it, only
// preserves it across v2 rewrites.
type LightMode struct {
	Name          string
	YieldEnabled  bool
	Extras        []Extra
	SirenSettings *SirenSettings
	Conditions    string
}

// DLSv2Data is the schema v2 root.
type DLSv2Data struct {
	Vehicles           string
	AudioModes         []AudioMode
	AudioControlGroups []AudioControlGroup
	LightModes         []LightMode
	PatternSync        string
	SpeedDrift         float64
	DefaultMode        string
}

// NewDLSv2Data returns a DLSv2Data with plugin defaults applied.
func NewDLSv2Data() *DLSv2Data {
	return &DLSv2Data{Vehicles: "police"}
}
