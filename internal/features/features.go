// Package features declares the closed set of compile-time feature switches
// and records which of them this binary was built with.
//
// Each switch is selected with a build tag (print42, lucky). Two convenience
// tags sit on top: allfeatures turns every switch on, and nodefaults
// suppresses anything the default policy would otherwise enable. The default
// policy is itself a build-time parameter: plain builds enable nothing, while
// builds tagged luckydefault enable the lucky switch unless nodefaults is
// also set.
package features

// Feature names one build-time switch.
type Feature string

const (
	// FeaturePrint42 replaces the headline with the literal "42".
	FeaturePrint42 Feature = "print42"

	// FeatureLucky appends a freshly drawn lucky number line.
	FeatureLucky Feature = "lucky"
)

// Known returns every declared feature in stable order.
func Known() []Feature {
	return []Feature{FeaturePrint42, FeatureLucky}
}

// Set records the enabled state of every known feature. A Set is constructed
// once and passed by value; nothing mutates it afterwards.
type Set struct {
	Print42 bool
	Lucky   bool
}

// Compiled returns the Set baked into this binary by its build tags. The
// result is constant for the process lifetime.
func Compiled() Set {
	return Set{
		Print42: compiledPrint42,
		Lucky:   compiledLucky,
	}
}

// Enabled reports whether f is on in this set. Unknown features are never on.
func (s Set) Enabled(f Feature) bool {
	switch f {
	case FeaturePrint42:
		return s.Print42
	case FeatureLucky:
		return s.Lucky
	}
	return false
}

// Names returns the enabled features in the same order as Known.
func (s Set) Names() []Feature {
	var out []Feature
	for _, f := range Known() {
		if s.Enabled(f) {
			out = append(out, f)
		}
	}
	return out
}

// Policy identifies which default policy a binary was built under.
type Policy string

const (
	// PolicyNone enables nothing unless a feature tag asks for it.
	PolicyNone Policy = "none"

	// PolicyLuckyOn enables the lucky feature by default. Building with the
	// nodefaults tag opts back out.
	PolicyLuckyOn Policy = "lucky-on"
)

// DefaultPolicy returns the policy this binary was built under.
func DefaultPolicy() Policy {
	return defaultPolicy
}
