package gamepad

// Zone is the tri-state classification of a continuous axis reading.
type Zone int

const (
	ZoneCenter Zone = iota
	ZoneNegative
	ZonePositive
)

func (z Zone) String() string {
	switch z {
	case ZoneNegative:
		return "negative"
	case ZonePositive:
		return "positive"
	default:
		return "center"
	}
}

// zoneThreshold is exclusive: a reading of exactly ±0.33 is still center.
const zoneThreshold = 0.33

// Classify buckets a raw axis value into one of the three zones.
func Classify(v float64) Zone {
	switch {
	case v < -zoneThreshold:
		return ZoneNegative
	case v > zoneThreshold:
		return ZonePositive
	default:
		return ZoneCenter
	}
}

// HorizontalZone classifies the stick's x coordinate.
func (s Stick) HorizontalZone() Zone {
	return Classify(s.Position.X)
}

// VerticalZone classifies the stick's y coordinate.
func (s Stick) VerticalZone() Zone {
	return Classify(s.Position.Y)
}
