//go:build lucky || allfeatures || (luckydefault && !nodefaults)

package features

// compiledLucky is true when built with -tags lucky or allfeatures, or when
// the luckydefault policy is active and not suppressed by nodefaults.
//
// Example: go build -tags lucky ./...
const compiledLucky = true
