package gamepad

// RawButton is one entry of a snapshot's button array, as reported by the
// browser Gamepad API. Value carries the analog reading for triggers.
type RawButton struct {
	Value   float64 `json:"value"`
	Pressed bool    `json:"pressed"`
}

// RawSnapshot is one immutable sample of a controller's indexed readings.
// Axis and button positions follow the W3C "standard" gamepad layout; the
// arrays may legitimately be shorter than the full layout.
type RawSnapshot struct {
	ID      string      `json:"id"`
	Axes    []float64   `json:"axes"`
	Buttons []RawButton `json:"buttons"`
}
