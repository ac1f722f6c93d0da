package tzlocale

import (
	"testing"
	"time"

	"github.com/go-playground/locales/et"

	"github.com/ngrash/go-tzone/internal/epochhour"
	"github.com/ngrash/go-tzone/tzdesc"
	"github.com/ngrash/go-tzone/tzone"
)

func losAngeles(t *testing.T) *tzone.Zone {
	t.Helper()
	z, err := tzone.New(tzdesc.Descriptor{
		ID:        "America/Los_Angeles",
		StdOffset: -480,
		Names: tzdesc.Names{
			Standard: tzdesc.NamePair{Short: "PST", Long: "Pacific Standard Time"},
			Daylight: &tzdesc.NamePair{Short: "PDT", Long: "Pacific Daylight Time"},
		},
		Transitions: []tzdesc.Transition{
			{Since: epochhour.FromDateTime(2024, time.March, 10, 10), Save: 60},
			{Since: epochhour.FromDateTime(2024, time.November, 3, 9), Save: 0},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return z
}

func TestTimeLong(t *testing.T) {
	z := losAngeles(t)
	trans := et.New()

	winter := time.Date(2024, time.January, 15, 21, 4, 5, 0, time.UTC)
	if got, want := TimeLong(trans, z, winter), "13:04:05 PST"; got != want {
		t.Errorf("TimeLong() = %q, want %q", got, want)
	}

	summer := time.Date(2024, time.July, 4, 19, 4, 5, 0, time.UTC)
	if got, want := TimeLong(trans, z, summer), "12:04:05 PDT"; got != want {
		t.Errorf("TimeLong() = %q, want %q", got, want)
	}
}

func TestTimeFull(t *testing.T) {
	z := losAngeles(t)
	trans := et.New()

	winter := time.Date(2024, time.January, 15, 21, 4, 5, 0, time.UTC)
	if got, want := TimeFull(trans, z, winter), "13:04:05 Vaikse ookeani standardaeg"; got != want {
		t.Errorf("TimeFull() = %q, want %q", got, want)
	}

	summer := time.Date(2024, time.July, 4, 19, 4, 5, 0, time.UTC)
	if got, want := TimeFull(trans, z, summer), "12:04:05 Vaikse ookeani suveaeg"; got != want {
		t.Errorf("TimeFull() = %q, want %q", got, want)
	}
}

func TestTimeFull_UnknownAbbreviation(t *testing.T) {
	z, err := tzone.New(tzdesc.Descriptor{
		ID:        "Test/Zone",
		StdOffset: 60,
		Names: tzdesc.Names{
			Standard: tzdesc.NamePair{Short: "XQT", Long: "Test Time"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	at := time.Date(2024, time.January, 15, 12, 4, 5, 0, time.UTC)
	if got, want := TimeFull(et.New(), z, at), "13:04:05 XQT"; got != want {
		t.Errorf("TimeFull() = %q, want %q", got, want)
	}
}
