package tzdesc

import (
	"errors"
	"fmt"
)

// Offsets must lie in the range POSIX requires for zone offsets:
// more than -25 hours and less than 26 hours east of Greenwich.
const (
	minOffset = -25 * 60
	maxOffset = 26 * 60
)

// Validate reports all problems that would make the descriptor
// unusable for offset resolution. It returns nil if the descriptor
// is well-formed.
func (d Descriptor) Validate() error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("missing id"))
	}
	if d.StdOffset <= minOffset || d.StdOffset >= maxOffset {
		errs = append(errs, fmt.Errorf("invalid std_offset (%d): must be more than -25 and less than 26 hours", d.StdOffset))
	}
	if d.Names.Standard.Short == "" || d.Names.Standard.Long == "" {
		errs = append(errs, errors.New("missing standard names"))
	}
	if d.Names.Daylight != nil && (d.Names.Daylight.Short == "" || d.Names.Daylight.Long == "") {
		errs = append(errs, errors.New("missing daylight names"))
	}
	if len(d.Transitions) > 0 && d.Names.Daylight == nil {
		errs = append(errs, errors.New("transitions require daylight names"))
	}
	for i, tr := range d.Transitions {
		if i > 0 && tr.Since < d.Transitions[i-1].Since {
			errs = append(errs, fmt.Errorf("transition %d: point %d before previous point %d", i, tr.Since, d.Transitions[i-1].Since))
		}
		if tr.Save <= -24*60 || tr.Save >= 24*60 {
			errs = append(errs, fmt.Errorf("transition %d: invalid save (%d): must be less than 24 hours", i, tr.Save))
		}
	}
	return errors.Join(errs...)
}
