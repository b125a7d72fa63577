package input

import "testing"

// fixedSampler returns the same reading forever.
type fixedSampler struct {
	pitch, roll float64
	ok          bool
}

func (s fixedSampler) Sample() (float64, float64, bool) {
	return s.pitch, s.roll, s.ok
}

func TestTiltDeadzoneIgnoresHandShake(t *testing.T) {
	tilt := NewTilt(fixedSampler{pitch: 3, roll: -5, ok: true}, DefaultTiltOptions())

	for i := 0; i < 10; i++ {
		if got := tilt.Poll(); got != None {
			t.Fatalf("Poll %d = %v, want None inside deadzone", i, got)
		}
	}
}

func TestTiltDirectionMapping(t *testing.T) {
	cases := []struct {
		name        string
		pitch, roll float64
		want        Direction
	}{
		{"forward", -20, 0, Up},
		{"back", 20, 0, Down},
		{"left", 0, -20, Left},
		{"right", 0, 20, Right},
		{"pitch dominates", 30, 15, Down},
		{"roll dominates", 10, -30, Left},
		{"tie goes vertical", 20, 20, Down},
	}

	for _, tc := range cases {
		tilt := NewTilt(fixedSampler{pitch: tc.pitch, roll: tc.roll, ok: true}, DefaultTiltOptions())
		if got := tilt.Poll(); got != tc.want {
			t.Errorf("%s: Poll = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestTiltNoReadingYieldsNone(t *testing.T) {
	tilt := NewTilt(fixedSampler{pitch: 90, roll: 90, ok: false}, DefaultTiltOptions())
	if got := tilt.Poll(); got != None {
		t.Errorf("Poll = %v, want None when sensor has no reading", got)
	}
}

func TestTiltSmoothingDampsSpikes(t *testing.T) {
	readings := []struct{ pitch, roll float64 }{
		{0, 0},
		{90, 0}, // single-tick spike
		{0, 0},
	}
	i := 0
	sampler := SamplerFunc(func() (float64, float64, bool) {
		r := readings[min(i, len(readings)-1)]
		i++
		return r.pitch, r.roll, true
	})

	tilt := NewTilt(sampler, TiltOptions{DeadzoneDeg: 30, Smoothing: 0.25})

	if got := tilt.Poll(); got != None {
		t.Fatalf("flat reading: Poll = %v, want None", got)
	}
	// The 90 degree spike smooths to 22.5, below the 30 degree deadzone.
	if got := tilt.Poll(); got != None {
		t.Errorf("spike reading: Poll = %v, want None after smoothing", got)
	}
}

func TestTiltSustainedTiltWinsThroughSmoothing(t *testing.T) {
	tilt := NewTilt(fixedSampler{pitch: 0, roll: 40, ok: true}, TiltOptions{DeadzoneDeg: 8, Smoothing: 0.25})

	// First sample primes the EMA directly, so the direction is immediate
	// and stays stable while the tilt is held.
	for i := 0; i < 5; i++ {
		if got := tilt.Poll(); got != Right {
			t.Fatalf("Poll %d = %v, want Right", i, got)
		}
	}
}

func TestTiltOptionValidation(t *testing.T) {
	tilt := NewTilt(fixedSampler{ok: true}, TiltOptions{DeadzoneDeg: -1, Smoothing: 5})
	if tilt.opts.DeadzoneDeg != DefaultTiltOptions().DeadzoneDeg {
		t.Errorf("DeadzoneDeg = %v, want default", tilt.opts.DeadzoneDeg)
	}
	if tilt.opts.Smoothing != DefaultTiltOptions().Smoothing {
		t.Errorf("Smoothing = %v, want default", tilt.opts.Smoothing)
	}
}
