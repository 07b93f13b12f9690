package agent

import (
	"testing"
)

func TestIsSupportedVersion(t *testing.T) {
	cases := []struct {
		version string
		want    bool
	}{
		{"0.7.0", true},
		{"v0.7.4", true},
		{"0.8.1", true},
		{"1.0.0-rc1", true},
		{"0.6.9", false},
		{"0.7.0-rc1", false},
	}

	for _, tc := range cases {
		t.Run(tc.version, func(t *testing.T) {
			got, err := IsSupportedVersion(tc.version)
			if err != nil {
				t.Fatalf("IsSupportedVersion(%q) error: %v", tc.version, err)
			}
			if got != tc.want {
				t.Fatalf("IsSupportedVersion(%q) = %v, want %v", tc.version, got, tc.want)
			}
		})
	}
}

func TestIsSupportedVersion_Invalid(t *testing.T) {
	if _, err := IsSupportedVersion("not-a-version"); err == nil {
		t.Fatal("expected error for unparseable version")
	}
}
