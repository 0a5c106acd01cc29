package version

import (
	"runtime/debug"
	"testing"
)

func withVersion(t *testing.T, version, commit, buildTime string) {
	t.Helper()
	oldV, oldC, oldB := Version, Commit, BuildTime
	Version, Commit, BuildTime = version, commit, buildTime
	t.Cleanup(func() { Version, Commit, BuildTime = oldV, oldC, oldB })
}

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		version, commit, buildTime string
		want                       string
	}{
		{"0.0.0-dev", "", "", "0.0.0-dev (development)"},
		{"", "", "", "0.0.0-dev (development)"},
		{"1.2.3", "abc1234", "", "1.2.3 (commit: abc1234)"},
		{"1.2.3", "abc1234", "2026-01-02T03:04:05Z", "1.2.3 (commit: abc1234, built at: 2026-01-02T03:04:05Z)"},
		{"1.2.3", "", "2026-01-02T03:04:05Z", "1.2.3 (built at: 2026-01-02T03:04:05Z)"},
	}
	for _, tt := range tests {
		withVersion(t, tt.version, tt.commit, tt.buildTime)
		if got := FormatVersion(); got != tt.want {
			t.Errorf("FormatVersion() = %q, want %q", got, tt.want)
		}
	}
}

func TestPopulateFromBuildInfo(t *testing.T) {
	withVersion(t, "0.0.0-dev", "", "")

	populateFromBuildInfo(&debug.BuildInfo{
		Main: debug.Module{Version: "v1.4.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-02-01T10:00:00+02:00"},
		},
	})

	if Version != "1.4.0" || Commit != "0123456" || BuildTime != "2026-02-01T08:00:00Z" {
		t.Errorf("got Version=%q Commit=%q BuildTime=%q", Version, Commit, BuildTime)
	}
}

func TestPopulateFromBuildInfo_KeepsLdflags(t *testing.T) {
	withVersion(t, "2.0.0", "fffffff", "")

	populateFromBuildInfo(&debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}},
	})

	if Version != "2.0.0" || Commit != "fffffff" {
		t.Errorf("got Version=%q Commit=%q", Version, Commit)
	}
}
