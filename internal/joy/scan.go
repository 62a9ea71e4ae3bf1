package joy

import "strings"

// Matcher is the identity rule for recognizing the test fixture among
// enumerated devices. A device matches when its display name contains
// any of NameContains, or its vendor/product pair equals VendorID and
// ProductID.
type Matcher struct {
	NameContains []string
	VendorID     uint16
	ProductID    uint16
}

// DefaultMatcher recognizes the virtual fixture this harness creates:
// vJoy-style devices and the generic 0x1234:0xBEAD identity.
func DefaultMatcher() Matcher {
	return Matcher{
		NameContains: []string{"Test Gamepad", "vJoy"},
		VendorID:     0x1234,
		ProductID:    0xBEAD,
	}
}

func (m Matcher) matches(c Caps) bool {
	for _, sub := range m.NameContains {
		if strings.Contains(c.Name, sub) {
			return true
		}
	}
	return c.VendorID == m.VendorID && c.ProductID == m.ProductID
}

// Selection is the outcome of a catalog scan's test-device search.
type Selection struct {
	Found   bool
	Buttons uint
	Axes    uint
}

// ScanResult is everything one pass over the device catalog produces.
type ScanResult struct {
	NumDevices uint
	Found      []Caps
	Selection  Selection
}

// Scan enumerates every slot the subsystem reports, collecting
// capabilities for occupied slots and selecting at most one test device
// per the matcher. Empty slots are skipped silently; capability-query
// failure during enumeration is expected and not an error.
//
// A selection with nonzero buttons is final: a later candidate can only
// displace the current one while the current one reports zero buttons.
// This means the first qualifying device with buttons wins even when a
// later device matches the identity rule more strongly.
func Scan(sub Subsystem, m Matcher) ScanResult {
	res := ScanResult{NumDevices: sub.NumDevices()}

	for id := uint(0); id < res.NumDevices; id++ {
		caps, err := sub.Caps(id)
		if err != nil {
			continue
		}
		res.Found = append(res.Found, caps)

		sel := &res.Selection
		if !sel.Found || (sel.Buttons == 0 && caps.Buttons > 0) {
			if m.matches(caps) {
				sel.Found = true
				sel.Buttons = caps.Buttons
				sel.Axes = caps.Axes
			}
		}
	}
	return res
}
