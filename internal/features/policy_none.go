//go:build !luckydefault

package features

// defaultPolicy enables nothing in plain builds.
const defaultPolicy = PolicyNone
