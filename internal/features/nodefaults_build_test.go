//go:build luckydefault && nodefaults && !lucky && !allfeatures

package features

import "testing"

// Run with: go test -tags "luckydefault nodefaults" ./internal/features
func TestNoDefaultsSuppressesLuckyDefault(t *testing.T) {
	if got := DefaultPolicy(); got != PolicyLuckyOn {
		t.Fatalf("DefaultPolicy() = %s, want %s", got, PolicyLuckyOn)
	}
	if Compiled().Lucky {
		t.Error("nodefaults should suppress the lucky default")
	}
}
