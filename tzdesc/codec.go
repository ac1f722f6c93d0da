package tzdesc

import (
	"encoding/json"
	"fmt"
	"io"
)

// wire mirrors the serialized descriptor shape. Names is a flat list of
// 2 or 4 strings ordered standard short, standard long, daylight short,
// daylight long. Transitions is a flat list of (point, save) pairs.
type wire struct {
	ID          string   `json:"id"`
	StdOffset   int      `json:"std_offset"`
	Names       []string `json:"names"`
	Transitions []int64  `json:"transitions"`
}

func (d Descriptor) wire() wire {
	w := wire{
		ID:          d.ID,
		StdOffset:   d.StdOffset,
		Names:       []string{d.Names.Standard.Short, d.Names.Standard.Long},
		Transitions: make([]int64, 0, 2*len(d.Transitions)),
	}
	if d.Names.Daylight != nil {
		w.Names = append(w.Names, d.Names.Daylight.Short, d.Names.Daylight.Long)
	}
	for _, t := range d.Transitions {
		w.Transitions = append(w.Transitions, t.Since, int64(t.Save))
	}
	return w
}

func (w wire) descriptor() (Descriptor, error) {
	d := Descriptor{
		ID:        w.ID,
		StdOffset: w.StdOffset,
	}
	switch len(w.Names) {
	case 2:
		d.Names.Standard = NamePair{Short: w.Names[0], Long: w.Names[1]}
	case 4:
		d.Names.Standard = NamePair{Short: w.Names[0], Long: w.Names[1]}
		d.Names.Daylight = &NamePair{Short: w.Names[2], Long: w.Names[3]}
	default:
		return Descriptor{}, fmt.Errorf("invalid names: %d entries, must be 2 or 4", len(w.Names))
	}
	if len(w.Transitions)%2 != 0 {
		return Descriptor{}, fmt.Errorf("invalid transitions: odd number of entries (%d)", len(w.Transitions))
	}
	for i := 0; i < len(w.Transitions); i += 2 {
		d.Transitions = append(d.Transitions, Transition{Since: w.Transitions[i], Save: int(w.Transitions[i+1])})
	}
	return d, nil
}

// MarshalJSON encodes the descriptor in its wire shape.
func (d Descriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.wire())
}

// UnmarshalJSON decodes a descriptor from its wire shape.
// It fails if the names or transitions lists are malformed; use
// Validate to check the decoded values.
func (d *Descriptor) UnmarshalJSON(b []byte) error {
	var w wire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	dec, err := w.descriptor()
	if err != nil {
		return err
	}
	*d = dec
	return nil
}

// Decode reads a single JSON descriptor from the given reader.
func Decode(r io.Reader) (Descriptor, error) {
	var d Descriptor
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return Descriptor{}, fmt.Errorf("decode descriptor: %w", err)
	}
	return d, nil
}

// Encode writes the descriptor as JSON to the given writer.
func (d Descriptor) Encode(w io.Writer) error {
	if err := json.NewEncoder(w).Encode(d); err != nil {
		return fmt.Errorf("encode descriptor: %w", err)
	}
	return nil
}
