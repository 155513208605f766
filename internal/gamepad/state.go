package gamepad

import "math"

type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Stick struct {
	Position Vector `json:"position"`
	Pressed  bool   `json:"pressed"`
}

type ButtonState struct {
	A     bool `json:"a"`
	B     bool `json:"b"`
	X     bool `json:"x"`
	Y     bool `json:"y"`
	Back  bool `json:"back"`
	Start bool `json:"start"`
	Home  bool `json:"home"`
}

type BumperState struct {
	Left  bool `json:"left"`
	Right bool `json:"right"`
}

type TriggerState struct {
	Left  float64 `json:"left"`
	Right float64 `json:"right"`
}

type DpadState struct {
	Up    bool `json:"up"`
	Down  bool `json:"down"`
	Left  bool `json:"left"`
	Right bool `json:"right"`
}

type SticksState struct {
	Left  Stick `json:"left"`
	Right Stick `json:"right"`
}

// Device is the semantic view of one RawSnapshot: every field is derived from
// exactly one snapshot, never merged across snapshots. Stick positions keep
// the raw [-1,1] coordinates; zone classification is computed on demand.
type Device struct {
	Buttons  ButtonState  `json:"buttons"`
	Bumpers  BumperState  `json:"bumpers"`
	Triggers TriggerState `json:"triggers"`
	Dpad     DpadState    `json:"dpad"`
	Sticks   SticksState  `json:"sticks"`
}

// DeltaChanges carries only the device field groups that differ between two
// broadcast frames. Nil fields are unchanged.
type DeltaChanges struct {
	Buttons  *ButtonState  `json:"buttons,omitempty"`
	Bumpers  *BumperState  `json:"bumpers,omitempty"`
	Triggers *TriggerState `json:"triggers,omitempty"`
	Dpad     *DpadState    `json:"dpad,omitempty"`
	Sticks   *SticksState  `json:"sticks,omitempty"`
}

func (d *DeltaChanges) IsEmpty() bool {
	return d.Buttons == nil &&
		d.Bumpers == nil &&
		d.Triggers == nil &&
		d.Dpad == nil &&
		d.Sticks == nil
}

const analogThreshold = 0.01

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) < analogThreshold
}

// ComputeDelta compares two semantic devices group by group, treating analog
// values within analogThreshold as equal.
func ComputeDelta(old, new_ Device) *DeltaChanges {
	d := &DeltaChanges{}

	if old.Buttons != new_.Buttons {
		d.Buttons = &new_.Buttons
	}
	if old.Bumpers != new_.Bumpers {
		d.Bumpers = &new_.Bumpers
	}
	if old.Dpad != new_.Dpad {
		d.Dpad = &new_.Dpad
	}

	if !floatEqual(old.Triggers.Left, new_.Triggers.Left) ||
		!floatEqual(old.Triggers.Right, new_.Triggers.Right) {
		d.Triggers = &new_.Triggers
	}

	if !floatEqual(old.Sticks.Left.Position.X, new_.Sticks.Left.Position.X) ||
		!floatEqual(old.Sticks.Left.Position.Y, new_.Sticks.Left.Position.Y) ||
		old.Sticks.Left.Pressed != new_.Sticks.Left.Pressed ||
		!floatEqual(old.Sticks.Right.Position.X, new_.Sticks.Right.Position.X) ||
		!floatEqual(old.Sticks.Right.Position.Y, new_.Sticks.Right.Position.Y) ||
		old.Sticks.Right.Pressed != new_.Sticks.Right.Pressed {
		d.Sticks = &new_.Sticks
	}

	return d
}
