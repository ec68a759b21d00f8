//go:build luckydefault

package features

// defaultPolicy is the lucky-on policy when built with -tags luckydefault.
const defaultPolicy = PolicyLuckyOn
