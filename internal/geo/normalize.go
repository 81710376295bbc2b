package geo

import (
	"errors"
	"slices"

	"github.com/paulmach/orb"
)

var (
	ErrNoParts    = errors.New("no part with at least two points")
	ErrZeroLength = errors.New("line has zero length")
)

// Normalize turns the parts of a route into one traversable line. Parts
// whose endpoints touch are stitched together (reversing a part when only
// its far end matches). If the parts do not all join up, the longest
// connected sequence is kept and the rest is dropped.
func Normalize(parts []orb.LineString) (orb.LineString, error) {
	usable := make([]orb.LineString, 0, len(parts))
	for _, p := range parts {
		if len(p) >= 2 {
			usable = append(usable, slices.Clone(p))
		}
	}
	if len(usable) == 0 {
		return nil, ErrNoParts
	}

	seqs := stitch(usable)
	line := seqs[0]
	best := Length(line)
	for _, s := range seqs[1:] {
		if l := Length(s); l > best {
			line, best = s, l
		}
	}
	if best == 0 {
		return nil, ErrZeroLength
	}
	return line, nil
}

func stitch(remaining []orb.LineString) []orb.LineString {
	var seqs []orb.LineString
	for len(remaining) > 0 {
		seq := remaining[0]
		remaining = remaining[1:]

		for changed := true; changed; {
			changed = false
			for i := 0; i < len(remaining); {
				seg := remaining[i]
				head, tail := seq[0], seq[len(seq)-1]
				switch {
				case tail == seg[0]:
					seq = append(seq, seg[1:]...)
				case tail == seg[len(seg)-1]:
					seq = append(seq, reversed(seg[:len(seg)-1])...)
				case head == seg[len(seg)-1]:
					seq = append(slices.Clone(seg[:len(seg)-1]), seq...)
				case head == seg[0]:
					seq = append(reversed(seg[1:]), seq...)
				default:
					i++
					continue
				}
				remaining = slices.Delete(remaining, i, i+1)
				changed = true
			}
		}
		seqs = append(seqs, seq)
	}
	return seqs
}

func reversed(ls orb.LineString) orb.LineString {
	out := slices.Clone(ls)
	slices.Reverse(out)
	return out
}
