//go:build linux

package meminfo

import (
	"strings"
	"testing"
)

const meminfoSample = `MemTotal:       32616588 kB
MemFree:         1374712 kB
MemAvailable:   24960868 kB
Buffers:         1876092 kB
Cached:         20971520 kB
SwapCached:          332 kB
`

func TestParseCachedPages(t *testing.T) {
	t.Parallel()

	// 20971520 kB on 4 kB pages
	got, err := parseCachedPages(strings.NewReader(meminfoSample), 4096)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := int64(5242880); got != want {
		t.Errorf("parseCachedPages = %d, want %d", got, want)
	}
}

func TestParseCachedPagesMissing(t *testing.T) {
	t.Parallel()

	if _, err := parseCachedPages(strings.NewReader("MemTotal: 1 kB\n"), 4096); err == nil {
		t.Fatal("expected an error when the Cached line is absent")
	}
}

func TestParseCachedPagesGarbage(t *testing.T) {
	t.Parallel()

	if _, err := parseCachedPages(strings.NewReader("Cached: lots kB\n"), 4096); err == nil {
		t.Fatal("expected an error for an unparsable value")
	}
}

func TestCachedPages(t *testing.T) {
	t.Parallel()

	got, err := CachedPages(4096)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got < 0 {
		t.Errorf("CachedPages = %d, want a non-negative count", got)
	}
}
