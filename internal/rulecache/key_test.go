package rulecache

import "testing"

func TestNewKeyIsOrderIndependentOverMeasures(t *testing.T) {
	a := NewKey("h1", "h2", "variable_consistency", []string{"epsilon=0.1", "epsilonprime=0.2"})
	b := NewKey("h1", "h2", "variable_consistency", []string{"epsilonprime=0.2", "epsilon=0.1"})
	if a != b {
		t.Errorf("expected measure order to not affect the key: %q != %q", a, b)
	}
}

func TestNewKeyDiffersOnMode(t *testing.T) {
	a := NewKey("h1", "h2", "classical", nil)
	b := NewKey("h1", "h2", "variable_consistency", nil)
	if a == b {
		t.Error("expected different modes to produce different keys")
	}
}

func TestHashBytesIsDeterministic(t *testing.T) {
	a := HashBytes([]byte("same content"))
	b := HashBytes([]byte("same content"))
	if a != b {
		t.Errorf("expected identical input to hash identically: %q != %q", a, b)
	}
}
