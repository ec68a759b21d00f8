//go:build !print42 && !allfeatures

package features

// compiledPrint42 is false in plain builds. Build with -tags print42 (or
// allfeatures) to turn the feature on.
const compiledPrint42 = false
