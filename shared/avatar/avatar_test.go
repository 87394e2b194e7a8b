package avatar_test

import (
	"strings"
	"testing"

	"checklist/shared/avatar"
)

func TestRandomSeed(t *testing.T) {
	seen := map[string]bool{}

	for range 20 {
		seed := avatar.RandomSeed()

		if len(seed) != 7 {
			t.Fatalf("expected a 7 character seed, got %q", seed)
		}

		for _, r := range seed {
			if !strings.ContainsRune("abcdefghijklmnopqrstuvwxyz1234567890", r) {
				t.Fatalf("seed %q contains unexpected character %q", seed, r)
			}
		}

		seen[seed] = true
	}

	if len(seen) < 2 {
		t.Error("expected random seeds to differ across calls")
	}
}

func TestURL(t *testing.T) {
	url := avatar.URL("abc1234")

	if url != "https://avatars.dicebear.com/api/pixel-art/abc1234.svg" {
		t.Errorf("unexpected avatar url %q", url)
	}
}
