package input

import "testing"

func TestBuiltinSourcesRegistered(t *testing.T) {
	for _, name := range []string{"keyboard", "tilt"} {
		if !Exists(name) {
			t.Errorf("source %q not registered", name)
		}
	}
	if Exists("telepathy") {
		t.Error("unexpected source registered")
	}
}

func TestNewByName(t *testing.T) {
	src, err := New("keyboard")
	if err != nil {
		t.Fatalf("New(keyboard): %v", err)
	}
	if _, ok := src.(*Keyboard); !ok {
		t.Errorf("New(keyboard) returned %T", src)
	}
	// Keyboard sources accept platform frames.
	if _, ok := src.(Feeder); !ok {
		t.Error("keyboard source does not implement Feeder")
	}

	src, err = New("tilt")
	if err != nil {
		t.Fatalf("New(tilt): %v", err)
	}
	if _, ok := src.(*Tilt); !ok {
		t.Errorf("New(tilt) returned %T", src)
	}
	// Sensor sources must not pretend to consume frames.
	if _, ok := src.(Feeder); ok {
		t.Error("tilt source unexpectedly implements Feeder")
	}
}

func TestNewUnknownSource(t *testing.T) {
	if _, err := New("telepathy"); err == nil {
		t.Error("New(telepathy) did not fail")
	}
}

func TestListIsSorted(t *testing.T) {
	names := List()
	if len(names) < 2 {
		t.Fatalf("List returned %d names, want at least 2", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("List not sorted: %v", names)
		}
	}
}

func TestRegistryTiltUsesInstalledSampler(t *testing.T) {
	SetTiltSampler(fixedSampler{pitch: 0, roll: 40, ok: true})
	defer SetTiltSampler(nil) // back to the null sampler

	src, err := New("tilt")
	if err != nil {
		t.Fatalf("New(tilt): %v", err)
	}
	if got := src.Poll(); got != Right {
		t.Errorf("Poll = %v, want Right from installed sampler", got)
	}
}

func TestDefaultTiltSamplerIsSilent(t *testing.T) {
	SetTiltSampler(nil)
	src, err := New("tilt")
	if err != nil {
		t.Fatalf("New(tilt): %v", err)
	}
	if got := src.Poll(); got != None {
		t.Errorf("Poll = %v, want None without sensor hardware", got)
	}
}
