package mlkem

import "testing"

// TestMessageThresholdBoundary pins the exact 833/2497 cutover that
// Compress_1 (via decodeMessage) uses to recover a message bit: an
// off-by-one here only shows up as a rare decapsulation mismatch, never
// a crash, so it needs an explicit boundary test rather than relying on
// the round-trip properties to catch it.
func TestMessageThresholdBoundary(t *testing.T) {
	cases := []struct {
		w    fieldElement
		want byte
	}{
		{832, 0},
		{833, 1},
		{2496, 1},
		{2497, 0},
	}

	for _, c := range cases {
		var f ringElement
		f[0] = c.w
		m := decodeMessage(f)
		got := m[0] & 1
		if got != c.want {
			t.Errorf("decodeMessage threshold at w=%d: got bit %d, want %d", c.w, got, c.want)
		}
	}
}

func TestEncodeDecodeMessageRoundTrip(t *testing.T) {
	var m [32]byte
	for i := range m {
		m[i] = byte(i * 7)
	}

	f := encodeMessage(m)
	got := decodeMessage(f)
	if got != m {
		t.Errorf("encodeMessage/decodeMessage round trip failed: got %x, want %x", got, m)
	}
}
