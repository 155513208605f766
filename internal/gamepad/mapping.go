package gamepad

// Standard gamepad layout indices (W3C Gamepad API "standard" mapping).
// This layout is fixed: browsers are responsible for remapping vendor
// quirks before a snapshot ever reaches us.
const (
	btnA          = 0
	btnB          = 1
	btnX          = 2
	btnY          = 3
	btnLeftBump   = 4
	btnRightBump  = 5
	btnLeftTrig   = 6
	btnRightTrig  = 7
	btnBack       = 8
	btnStart      = 9
	btnLeftStick  = 10
	btnRightStick = 11
	btnDpadUp     = 12
	btnDpadDown   = 13
	btnDpadLeft   = 14
	btnDpadRight  = 15
	btnHome       = 16

	axisLeftX  = 0
	axisLeftY  = 1
	axisRightX = 2
	axisRightY = 3
)

// pressedAt reads button presence at a fixed index. Controllers legitimately
// report fewer buttons than the standard layout, so a missing index reads as
// not pressed rather than failing.
func pressedAt(buttons []RawButton, i int) bool {
	if i >= len(buttons) {
		return false
	}
	return buttons[i].Pressed
}

// valueAt reads the analog button value at a fixed index, 0.0 when missing.
func valueAt(buttons []RawButton, i int) float64 {
	if i >= len(buttons) {
		return 0
	}
	return buttons[i].Value
}

// axisAt reads an axis value, 0.0 (centered) when missing.
func axisAt(axes []float64, i int) float64 {
	if i >= len(axes) {
		return 0
	}
	return axes[i]
}

// Map derives the semantic device model from one raw snapshot. It is pure and
// total: snapshots shorter than the standard layout degrade to defaults.
func Map(raw RawSnapshot) Device {
	return Device{
		Buttons: ButtonState{
			A:     pressedAt(raw.Buttons, btnA),
			B:     pressedAt(raw.Buttons, btnB),
			X:     pressedAt(raw.Buttons, btnX),
			Y:     pressedAt(raw.Buttons, btnY),
			Back:  pressedAt(raw.Buttons, btnBack),
			Start: pressedAt(raw.Buttons, btnStart),
			Home:  pressedAt(raw.Buttons, btnHome),
		},
		Bumpers: BumperState{
			Left:  pressedAt(raw.Buttons, btnLeftBump),
			Right: pressedAt(raw.Buttons, btnRightBump),
		},
		Triggers: TriggerState{
			Left:  valueAt(raw.Buttons, btnLeftTrig),
			Right: valueAt(raw.Buttons, btnRightTrig),
		},
		Dpad: DpadState{
			Up:    pressedAt(raw.Buttons, btnDpadUp),
			Down:  pressedAt(raw.Buttons, btnDpadDown),
			Left:  pressedAt(raw.Buttons, btnDpadLeft),
			Right: pressedAt(raw.Buttons, btnDpadRight),
		},
		Sticks: SticksState{
			Left: Stick{
				Position: Vector{
					X: axisAt(raw.Axes, axisLeftX),
					Y: axisAt(raw.Axes, axisLeftY),
				},
				Pressed: pressedAt(raw.Buttons, btnLeftStick),
			},
			Right: Stick{
				Position: Vector{
					X: axisAt(raw.Axes, axisRightX),
					Y: axisAt(raw.Axes, axisRightY),
				},
				Pressed: pressedAt(raw.Buttons, btnRightStick),
			},
		},
	}
}
