package filename

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrNotExpandable marks filenames that do not carry a multi-prefix stem.
var ErrNotExpandable = errors.New("not expandable")

// stemSegments is the exact number of underscore-separated segments an
// expandable stem carries: the prefix-pair segment plus three payload
// segments.
const stemSegments = 4

// prefixPairLen is the width of one encoded prefix within the first segment.
const prefixPairLen = 2

// Expansion describes the fan-out derived from one multi-prefix filename.
type Expansion struct {
	Source  string
	Pairs   []string
	Derived []string
}

// Expand decomposes a filename whose stem is prefixPairs_seg1_seg2_seg3 into
// one filename per two-character prefix pair, preserving the extension.
// A pair is valid only when its first character is P, B, or C
// (case-insensitive). Expansion requires at least two pairs; a single prefix
// has nothing to fan out into.
func Expand(name string) (Expansion, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	segments := strings.Split(stem, "_")
	if len(segments) != stemSegments {
		return Expansion{}, fmt.Errorf("%w: stem %q has %d segments, want %d", ErrNotExpandable, stem, len(segments), stemSegments)
	}

	prefixes := segments[0]
	if len(prefixes)%prefixPairLen != 0 {
		return Expansion{}, fmt.Errorf("%w: prefix segment %q has odd length", ErrNotExpandable, prefixes)
	}

	pairs := make([]string, 0, len(prefixes)/prefixPairLen)
	for i := 0; i < len(prefixes); i += prefixPairLen {
		pair := prefixes[i : i+prefixPairLen]
		if !validPair(pair) {
			return Expansion{}, fmt.Errorf("%w: prefix pair %q has invalid leading character", ErrNotExpandable, pair)
		}
		pairs = append(pairs, pair)
	}
	if len(pairs) < 2 {
		return Expansion{}, fmt.Errorf("%w: found %d prefix pair(s), need at least 2", ErrNotExpandable, len(pairs))
	}

	suffix := strings.Join(segments[1:], "_")
	derived := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		derived = append(derived, pair+"_"+suffix+ext)
	}

	return Expansion{Source: name, Pairs: pairs, Derived: derived}, nil
}

func validPair(pair string) bool {
	switch pair[0] {
	case 'P', 'B', 'C', 'p', 'b', 'c':
		return true
	default:
		return false
	}
}
