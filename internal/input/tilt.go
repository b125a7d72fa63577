package input

// Sampler reports the physical tilt of the device.
// Implementations wrap the actual sensor hardware (e.g. a Sense HAT IMU).
type Sampler interface {
	// Sample returns pitch (forward/back) and roll (left/right) in degrees.
	// ok is false when no reading is available this tick.
	Sample() (pitch, roll float64, ok bool)
}

// SamplerFunc adapts a plain function to the Sampler interface.
type SamplerFunc func() (pitch, roll float64, ok bool)

// Sample calls the function.
func (f SamplerFunc) Sample() (pitch, roll float64, ok bool) {
	return f()
}

// TiltOptions tunes how raw tilt readings become directional intent.
type TiltOptions struct {
	// DeadzoneDeg is the tilt magnitude in degrees below which hand shake
	// is ignored.
	DeadzoneDeg float64

	// Smoothing is the EMA factor in (0, 1]: higher is snappier, lower is
	// smoother.
	Smoothing float64
}

// DefaultTiltOptions returns the tuning used on the reference hardware.
func DefaultTiltOptions() TiltOptions {
	return TiltOptions{
		DeadzoneDeg: 8.0,
		Smoothing:   0.25,
	}
}

// Tilt derives directional intent from a tilt sensor. Readings are smoothed
// with an exponential moving average and clipped by a deadzone; when both
// axes exceed the deadzone the stronger one wins, ties going vertical.
type Tilt struct {
	sampler Sampler
	opts    TiltOptions

	emaPitch float64
	emaRoll  float64
	primed   bool
}

// NewTilt creates a tilt input source reading from the given sampler.
func NewTilt(s Sampler, opts TiltOptions) *Tilt {
	if opts.Smoothing <= 0 || opts.Smoothing > 1 {
		opts.Smoothing = DefaultTiltOptions().Smoothing
	}
	if opts.DeadzoneDeg < 0 {
		opts.DeadzoneDeg = DefaultTiltOptions().DeadzoneDeg
	}
	return &Tilt{sampler: s, opts: opts}
}

// Poll samples the sensor and maps the smoothed tilt to a direction.
func (t *Tilt) Poll() Direction {
	pitch, roll, ok := t.sampler.Sample()
	if !ok {
		return None
	}

	if !t.primed {
		t.emaPitch = pitch
		t.emaRoll = roll
		t.primed = true
	} else {
		a := t.opts.Smoothing
		t.emaPitch = a*pitch + (1-a)*t.emaPitch
		t.emaRoll = a*roll + (1-a)*t.emaRoll
	}

	absPitch := abs(t.emaPitch)
	absRoll := abs(t.emaRoll)
	dz := t.opts.DeadzoneDeg

	if absPitch < dz && absRoll < dz {
		return None
	}

	if absPitch >= absRoll {
		if t.emaPitch > 0 {
			return Down
		}
		return Up
	}
	if t.emaRoll > 0 {
		return Right
	}
	return Left
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// nullSampler stands in until real sensor hardware is wired up.
type nullSampler struct{}

func (nullSampler) Sample() (float64, float64, bool) {
	return 0, 0, false
}

// defaultTiltSampler is what the registry-built tilt source reads from.
var defaultTiltSampler Sampler = nullSampler{}

// SetTiltSampler installs the sensor backend used when a tilt source is
// created by name through the registry. Call before constructing the game.
func SetTiltSampler(s Sampler) {
	if s == nil {
		s = nullSampler{}
	}
	defaultTiltSampler = s
}

// NewDefaultTilt creates a tilt source reading from the installed sampler,
// with custom tuning. See SetTiltSampler.
func NewDefaultTilt(opts TiltOptions) *Tilt {
	return NewTilt(defaultTiltSampler, opts)
}

func init() {
	Register("tilt", func() (Source, error) {
		return NewTilt(defaultTiltSampler, DefaultTiltOptions()), nil
	})
}
