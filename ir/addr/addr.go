package addr

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Addr is a static address: 1 to 5 concrete indices, segment first.
// The empty address (no parts) denotes the whole segment sequence.
type Addr []int

// Parse parses a dot-joined static address. The empty string parses to
// the empty address.
func Parse(s string) (Addr, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ".")
	res := make(Addr, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: bad index %q in %q", ErrBadQuery, p, s)
		}
		res[i] = n
	}
	return res, nil
}

func (a Addr) String() string {
	if len(a) == 0 {
		return ""
	}
	parts := make([]string, len(a))
	for i, n := range a {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}

func (a Addr) Depth() int {
	return len(a)
}

// Child extends the address by one index, without sharing backing
// storage with a.
func (a Addr) Child(i int) Addr {
	res := make(Addr, len(a)+1)
	copy(res, a)
	res[len(a)] = i
	return res
}

// Compare orders addresses numerically, part by part, using the first
// differing part. A shorter address has no more parts and orders
// first; the empty address sorts lowest.
func Compare(a, b Addr) int {
	n := min(len(a), len(b))
	for i := range n {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// CompareStrings compares two dot-address strings by numeric part
// order, not lexicographically. Parts that do not parse as integers
// compare as zero.
func CompareStrings(a, b string) int {
	return Compare(lenientParse(a), lenientParse(b))
}

func lenientParse(s string) Addr {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ".")
	res := make(Addr, len(parts))
	for i, p := range parts {
		n, _ := strconv.Atoi(p)
		res[i] = n
	}
	return res
}

// Sort orders addresses ascending by Compare, or descending when
// reverse is set.
func Sort(addrs []Addr, reverse bool) {
	sort.Slice(addrs, func(i, j int) bool {
		c := Compare(addrs[i], addrs[j])
		if reverse {
			return c > 0
		}
		return c < 0
	})
}

// SortStrings orders address strings the same way Sort orders parsed
// addresses.
func SortStrings(addrs []string, reverse bool) {
	sort.Slice(addrs, func(i, j int) bool {
		c := CompareStrings(addrs[i], addrs[j])
		if reverse {
			return c > 0
		}
		return c < 0
	})
}
