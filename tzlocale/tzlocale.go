// Package tzlocale renders zone-qualified wall clock times in CLDR
// locales using github.com/go-playground/locales translators.
//
// The translators resolve zone names through the abbreviation reported
// by time.Time.Zone, so the functions here shift the instant into the
// zone's location first and let the zone stay the single source of
// offset truth.
package tzlocale

import (
	"time"

	"github.com/go-playground/locales"

	"github.com/ngrash/go-tzone/tzone"
)

// TimeLong returns t's wall clock in z followed by the zone
// abbreviation, formatted for the given locale:
// "13:04:05 PST" for Estonian.
func TimeLong(trans locales.Translator, z *tzone.Zone, t time.Time) string {
	return trans.FmtTimeLong(t.In(z.Location(t)))
}

// TimeFull returns t's wall clock in z followed by the zone name
// localized through the locale's CLDR time zone table:
// "13:04:05 Vaikse ookeani standardaeg" for Estonian.
// Abbreviations the locale does not know render as the abbreviation.
func TimeFull(trans locales.Translator, z *tzone.Zone, t time.Time) string {
	return trans.FmtTimeFull(t.In(z.Location(t)))
}
