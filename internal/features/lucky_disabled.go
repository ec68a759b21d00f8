//go:build !lucky && !allfeatures && (!luckydefault || nodefaults)

package features

// compiledLucky is false unless a lucky, allfeatures, or unsuppressed
// luckydefault tag turns it on.
const compiledLucky = false
