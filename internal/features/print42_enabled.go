//go:build print42 || allfeatures

package features

// compiledPrint42 is true when built with -tags print42 (or allfeatures).
//
// Example: go build -tags print42 ./...
const compiledPrint42 = true
