// Package tzone resolves UTC offsets, daylight saving state and display
// names of time zones from pre-baked descriptors, see package tzdesc.
//
// Offsets handled by this package are in minutes west of Greenwich,
// the POSIX sign convention: UTC-08:00 is 480. Note that this is the
// opposite of the conventional, ISO 8601 style sign that descriptors
// and RFC 822 time zone strings carry.
package tzone

import (
	"fmt"
	"sort"
	"time"

	"github.com/ngrash/go-tzone/internal/epochhour"
	"github.com/ngrash/go-tzone/tzdesc"
)

// Zone is an immutable time zone. All methods are pure functions of the
// given instant and safe for concurrent use.
type Zone struct {
	id string

	// standardOffset is in minutes west of Greenwich.
	standardOffset int

	names       tzdesc.Names
	transitions []tzdesc.Transition
}

// New builds a Zone from a descriptor. It fails if the descriptor is
// not well-formed, see tzdesc.Descriptor.Validate.
func New(d tzdesc.Descriptor) (*Zone, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid descriptor %q: %w", d.ID, err)
	}
	z := &Zone{
		id:             d.ID,
		standardOffset: -d.StdOffset, // to minutes west of Greenwich
		names:          d.Names,
		transitions:    append([]tzdesc.Transition(nil), d.Transitions...),
	}
	if d.Names.Daylight != nil {
		daylight := *d.Names.Daylight
		z.names.Daylight = &daylight
	}
	return z, nil
}

// FixedOffset builds a Zone with the given UTC offset in minutes west
// of Greenwich and no daylight saving time. The zone id is a POSIX
// style name and both display names are a UTC label, so
// FixedOffset(-120) is "Etc/GMT+2" displayed as "UTC+2".
//
// FixedOffset panics if the offset is outside the range POSIX permits
// for zone offsets. Fixed offsets come from source code, not from
// descriptor data, so a violation is a bug in the caller.
func FixedOffset(offsetMinutes int) *Zone {
	if offsetMinutes <= -26*60 || offsetMinutes >= 25*60 {
		panic(fmt.Errorf("fixed offset out of range: %d minutes", offsetMinutes))
	}
	name := UTCString(offsetMinutes)
	return &Zone{
		id:             PosixID(offsetMinutes),
		standardOffset: offsetMinutes,
		names: tzdesc.Names{
			Standard: tzdesc.NamePair{Short: name, Long: name},
		},
	}
}

// ID returns the zone identifier, e.g. "America/Los_Angeles".
func (z *Zone) ID() string { return z.id }

// StandardOffset returns the standard (non-daylight) UTC offset in
// minutes west of Greenwich.
func (z *Zone) StandardOffset() int { return z.standardOffset }

// DaylightAdjustment returns the daylight saving adjustment in minutes
// in effect at t: the Save value of the last transition at or before t,
// or 0 if t precedes all transitions. Transitions take effect on whole
// hours, so the sub-hour part of t does not influence the result.
func (z *Zone) DaylightAdjustment(t time.Time) int {
	i := z.search(t)
	if i == 0 {
		return 0
	}
	return z.transitions[i-1].Save
}

// search returns the index of the first transition after t,
// or len(transitions) if there is none.
func (z *Zone) search(t time.Time) int {
	h := epochhour.FromTime(t)
	return sort.Search(len(z.transitions), func(i int) bool {
		return z.transitions[i].Since > h
	})
}

// Offset returns the UTC offset in minutes west of Greenwich in effect
// at t. A daylight adjustment moves clocks forward and therefore
// reduces the west-positive offset.
func (z *Zone) Offset(t time.Time) int {
	return z.standardOffset - z.DaylightAdjustment(t)
}

// IsDST reports whether daylight saving time is in effect at t.
// Negative adjustments, as used by winter time schemes, do not count
// as daylight saving time.
func (z *Zone) IsDST(t time.Time) bool {
	return z.DaylightAdjustment(t) > 0
}

// ShortName returns the abbreviated zone name at t, e.g. "PST" or "PDT".
func (z *Zone) ShortName(t time.Time) string {
	if z.IsDST(t) {
		return z.names.Daylight.Short
	}
	return z.names.Standard.Short
}

// LongName returns the full zone name at t, e.g. "Pacific Standard Time".
func (z *Zone) LongName(t time.Time) string {
	if z.IsDST(t) {
		return z.names.Daylight.Long
	}
	return z.names.Standard.Long
}

// GMTString returns the GMT representation of the offset in effect at
// t, e.g. "GMT-08:00".
func (z *Zone) GMTString(t time.Time) string {
	return GMTString(z.Offset(t))
}

// RFC822String returns the RFC 822 representation of the offset in
// effect at t, e.g. "-0800". The west-positive offset is re-inverted
// to its conventional sign before formatting.
func (z *Zone) RFC822String(t time.Time) string {
	return RFC822String(-z.Offset(t))
}

// Location materializes the offset and abbreviation in effect at t as
// a fixed time.Location, so resolved zones can flow into standard
// library APIs. The location does not follow transitions; resolve
// again for instants in a different daylight saving period.
func (z *Zone) Location(t time.Time) *time.Location {
	return time.FixedZone(z.ShortName(t), -z.Offset(t)*60)
}

// NextTransition returns the first transition strictly after t's hour.
// The second return value is false if there is none.
func (z *Zone) NextTransition(t time.Time) (tzdesc.Transition, bool) {
	i := z.search(t)
	if i == len(z.transitions) {
		return tzdesc.Transition{}, false
	}
	return z.transitions[i], true
}
