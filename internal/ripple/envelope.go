package ripple

// Envelope segment boundaries, as fractions of a cycle.
const (
	AttackEnd = 0.03
	HoldEnd   = 0.10
)

// Intensity returns the brightness weight for a normalized cycle time in
// [0, 1): a smooth rise over the attack, a hold at full brightness, then a
// linear decay to zero at the end of the cycle.
func Intensity(tNorm float64) float64 {
	switch {
	case tNorm < 0:
		return 0
	case tNorm < AttackEnd:
		return smoothstep(0, AttackEnd, tNorm)
	case tNorm < HoldEnd:
		return 1
	case tNorm < 1:
		return 1 - (tNorm-HoldEnd)/(1-HoldEnd)
	default:
		return 0
	}
}

// NormalizedTime folds t (seconds) into [0, 1) of the cycle.
func NormalizedTime(t, cycle float64) float64 {
	n := Wrap(t, cycle) / cycle
	if n >= 1 {
		n = 0
	}
	return n
}

// InstanceIntensity evaluates the envelope for an instance at global time.
func InstanceIntensity(globalTime, delay, cycle float64) float64 {
	return Intensity(NormalizedTime(globalTime+delay, cycle))
}

func smoothstep(edge0, edge1, x float64) float64 {
	t := (x - edge0) / (edge1 - edge0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}
