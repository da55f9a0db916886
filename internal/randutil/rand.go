package randutil

import (
	rand "math/rand/v2"

	"github.com/coder/quartz"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Both PCG seeds are derived from the one value so a single --seed flag
// reproduces a whole session of random hands.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// FromClock seeds from the clock's current time. Tests pass quartz.NewMock
// to pin the sequence.
func FromClock(clock quartz.Clock) *rand.Rand {
	return New(clock.Now().UnixNano())
}

// Resolve returns New(seed) when a seed was configured and FromClock otherwise.
// Zero means unset, so a zero seed is clock-derived.
func Resolve(seed int64, clock quartz.Clock) *rand.Rand {
	if seed != 0 {
		return New(seed)
	}
	return FromClock(clock)
}

// mix is the splitmix64 finalizer.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
