package camera

import (
	"math"
	"time"
)

// Timing of the scripted camera move. The pre-roll swings the camera to
// the opening vantage, the hold lets it settle, and the follow tracks
// the traveler for the remainder of the travel animation.
const (
	PreRollDuration = 900 * time.Millisecond
	HoldDuration    = 600 * time.Millisecond
)

// Vantage angles. Yaw 0 places the camera ahead of the traveler on the
// line toward the target, pi places it behind. Pitch sweeps from a
// near-top-down opening shot toward near-horizontal as a journey
// completes.
const (
	yawAhead  = 0.0
	yawSide   = math.Pi / 2
	yawBehind = math.Pi

	pitchOverhead   = 1.35
	pitchHorizontal = 0.2
)

// Vantage is a target viewing angle for the scripted sequence.
type Vantage struct {
	Yaw   float64
	Pitch float64
}

// VantageForProgress maps a journey completion fraction to a viewing
// angle. Yaw sweeps ahead to side-on over the first half and side-on to
// behind over the second; pitch descends from overhead to horizontal
// across the middle of the journey. Inputs outside [0,1] are clamped.
func VantageForProgress(p float64) Vantage {
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}

	var yaw float64
	if p < 0.5 {
		yaw = lerp(yawAhead, yawSide, smoothstep(0, 0.5, p))
	} else {
		yaw = lerp(yawSide, yawBehind, smoothstep(0.5, 1, p))
	}
	pitch := lerp(pitchOverhead, pitchHorizontal, smoothstep(0.1, 0.9, p))
	return Vantage{Yaw: yaw, Pitch: pitch}
}

// Phase identifies where a scripted sequence is within its timeline.
type Phase int

const (
	PhaseInactive Phase = iota
	PhasePreRoll
	PhaseHold
	PhaseRocketFollow
)

func (p Phase) String() string {
	switch p {
	case PhasePreRoll:
		return "preroll"
	case PhaseHold:
		return "hold"
	case PhaseRocketFollow:
		return "follow"
	default:
		return "inactive"
	}
}

// sequence is one scripted camera move. All phase decisions derive from
// absolute timestamps so a paused and resumed frame loop picks up at
// the correct point instead of drifting.
type sequence struct {
	start     time.Time
	travelDur time.Duration
	fromYaw   float64
	vStart    Vantage
	vEnd      Vantage
}

func (s *sequence) rocketEnd() time.Duration {
	return PreRollDuration + HoldDuration + s.travelDur
}

func (s *sequence) phase(now time.Time) Phase {
	dt := now.Sub(s.start)
	switch {
	case dt < 0:
		return PhasePreRoll
	case dt < PreRollDuration:
		return PhasePreRoll
	case dt < PreRollDuration+HoldDuration:
		return PhaseHold
	case dt < s.rocketEnd():
		return PhaseRocketFollow
	default:
		return PhaseInactive
	}
}

// yawAt returns the scripted yaw target for now, and whether the
// sequence is still active.
func (s *sequence) yawAt(now time.Time) (float64, bool) {
	dt := now.Sub(s.start)
	if dt < 0 {
		dt = 0
	}
	switch s.phase(now) {
	case PhasePreRoll:
		t := float64(dt) / float64(PreRollDuration)
		return lerpAngle(s.fromYaw, s.vStart.Yaw, t), true
	case PhaseHold:
		return s.vStart.Yaw, true
	case PhaseRocketFollow:
		elapsed := dt - PreRollDuration - HoldDuration
		t := float64(elapsed) / float64(s.travelDur)
		return lerpAngle(s.vStart.Yaw, s.vEnd.Yaw, easeInOutCubic(t)), true
	default:
		return 0, false
	}
}

// smoothstep is the Hermite ramp from 0 at e0 to 1 at e1.
func smoothstep(e0, e1, x float64) float64 {
	t := (x - e0) / (e1 - e0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}

func easeInOutCubic(t float64) float64 {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// lerpAngle interpolates along the shortest angular path between two
// yaw values, so a sequence starting at 350 degrees heading for 10
// sweeps 20 degrees rather than 340.
func lerpAngle(a, b, t float64) float64 {
	diff := math.Mod(b-a, 2*math.Pi)
	if diff > math.Pi {
		diff -= 2 * math.Pi
	} else if diff < -math.Pi {
		diff += 2 * math.Pi
	}
	return a + diff*t
}
