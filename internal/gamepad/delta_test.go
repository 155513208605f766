package gamepad

import (
	"testing"

	"go.viam.com/test"
)

func TestComputeDeltaEmpty(t *testing.T) {
	a := Map(fullSnapshot())
	d := ComputeDelta(a, a)
	test.That(t, d.IsEmpty(), test.ShouldBeTrue)
}

func TestComputeDeltaButtons(t *testing.T) {
	var old Device
	next := old
	next.Buttons.A = true

	d := ComputeDelta(old, next)
	test.That(t, d.IsEmpty(), test.ShouldBeFalse)
	test.That(t, d.Buttons, test.ShouldResemble, &next.Buttons)
	test.That(t, d.Sticks, test.ShouldBeNil)
	test.That(t, d.Triggers, test.ShouldBeNil)
}

func TestComputeDeltaAnalogThreshold(t *testing.T) {
	var old Device
	old.Triggers.Left = 0.500

	// Inside the analog threshold: no delta.
	next := old
	next.Triggers.Left = 0.505
	test.That(t, ComputeDelta(old, next).IsEmpty(), test.ShouldBeTrue)

	// Past the threshold: triggers group reported.
	next.Triggers.Left = 0.52
	d := ComputeDelta(old, next)
	test.That(t, d.Triggers, test.ShouldResemble, &next.Triggers)
}

func TestComputeDeltaStickPress(t *testing.T) {
	var old Device
	next := old
	next.Sticks.Right.Pressed = true

	d := ComputeDelta(old, next)
	test.That(t, d.Sticks, test.ShouldResemble, &next.Sticks)
}
