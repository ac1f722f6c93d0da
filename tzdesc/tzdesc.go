// Package tzdesc implements the pre-baked time zone descriptor format.
//
// A descriptor is a compact summary of a time zone: its standard UTC
// offset, its display names and an ordered table of daylight saving
// transitions. Descriptors are produced ahead of time from a time zone
// database and consumed by package tzone, which resolves offsets,
// daylight saving state and names for arbitrary instants.
package tzdesc

// Descriptor describes a single time zone.
type Descriptor struct {
	// ID is the zone identifier, e.g. "America/Los_Angeles".
	// It is used for display and lookup only, never parsed.
	ID string

	// StdOffset is the standard (non-daylight) UTC offset in minutes,
	// using the conventional sign found in descriptor sources: east of
	// Greenwich is positive, so America/Los_Angeles is -480.
	StdOffset int

	// Names holds the display names of the zone.
	Names Names

	// Transitions is the daylight saving transition table,
	// ascending by Since. It is empty for zones that never
	// observe daylight saving time.
	Transitions []Transition
}

// Names holds the display names of a zone.
type Names struct {
	// Standard names the zone outside daylight saving time.
	Standard NamePair
	// Daylight names the zone during daylight saving time.
	// It is nil for zones that never observe daylight saving time.
	Daylight *NamePair
}

// NamePair is an abbreviated and a full display name,
// e.g. "PST" and "Pacific Standard Time".
type NamePair struct {
	Short string
	Long  string
}

// Transition is a single entry of a transition table.
type Transition struct {
	// Since is the transition point in whole hours since the Unix
	// epoch, UTC. The transition takes effect at this hour and stays
	// in effect until the next transition.
	Since int64

	// Save is the daylight adjustment in minutes that applies from
	// Since on: 60 for a common daylight saving hour, 0 when the zone
	// returns to standard time.
	Save int
}
