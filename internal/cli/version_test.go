package cli

import (
	"encoding/json"
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/usdAG/reftool/internal/buildinfo"
)

func stubBuildInfo(t *testing.T, bi *debug.BuildInfo) {
	t.Helper()
	prev := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
	t.Cleanup(func() { readBuildInfo = prev })
}

func stubLinkerVersion(t *testing.T, version, commit, date string) {
	t.Helper()
	pv, pc, pd := buildinfo.Version, buildinfo.Commit, buildinfo.Date
	buildinfo.Version, buildinfo.Commit, buildinfo.Date = version, commit, date
	t.Cleanup(func() { buildinfo.Version, buildinfo.Commit, buildinfo.Date = pv, pc, pd })
}

func releaseBuild(version string, settings ...debug.BuildSetting) *debug.BuildInfo {
	return &debug.BuildInfo{
		GoVersion: "go1.24.1",
		Main:      debug.Module{Path: "github.com/usdAG/reftool", Version: version},
		Settings:  settings,
	}
}

func TestCurrentVersionInfo(t *testing.T) {
	tests := []struct {
		name   string
		build  *debug.BuildInfo
		linker [3]string
		want   versionInfo
	}{
		{
			name: "module build with vcs data",
			build: releaseBuild("v1.2.3",
				debug.BuildSetting{Key: "vcs.revision", Value: "abc123"},
				debug.BuildSetting{Key: "vcs.time", Value: "2026-02-14T17:00:00Z"},
				debug.BuildSetting{Key: "vcs.modified", Value: "true"},
				debug.BuildSetting{Key: "GOOS", Value: "windows"},
				debug.BuildSetting{Key: "GOARCH", Value: "amd64"},
			),
			want: versionInfo{
				Version: "v1.2.3", ModulePath: "github.com/usdAG/reftool",
				Commit: "abc123", CommitTime: "2026-02-14T17:00:00Z", Modified: true,
				GoVersion: "go1.24.1", GOOS: "windows", GOARCH: "amd64",
			},
		},
		{
			name:   "devel build uses linker values",
			build:  releaseBuild("(devel)"),
			linker: [3]string{"v0.9.0", "feed42", "2026-01-01"},
			want: versionInfo{
				Version: "v0.9.0", ModulePath: "github.com/usdAG/reftool",
				Commit: "feed42", CommitTime: "2026-01-01",
				GoVersion: "go1.24.1", GOOS: runtime.GOOS, GOARCH: runtime.GOARCH,
			},
		},
		{
			name:  "no build info",
			build: nil,
			want: versionInfo{
				Version: "devel", ModulePath: defaultModulePath,
				GoVersion: runtime.Version(), GOOS: runtime.GOOS, GOARCH: runtime.GOARCH,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubBuildInfo(t, tt.build)
			stubLinkerVersion(t, tt.linker[0], tt.linker[1], tt.linker[2])

			if got := currentVersionInfo(); got != tt.want {
				t.Errorf("currentVersionInfo() =\n%+v\nwant\n%+v", got, tt.want)
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	stubLinkerVersion(t, "", "", "")
	stubBuildInfo(t, releaseBuild("v1.2.3",
		debug.BuildSetting{Key: "vcs.revision", Value: "deadbeef"},
		debug.BuildSetting{Key: "GOOS", Value: "darwin"},
		debug.BuildSetting{Key: "GOARCH", Value: "arm64"},
	))

	out, _, err := executeCLI(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	want := "ref v1.2.3 (deadbeef)\ngithub.com/usdAG/reftool go1.24.1 darwin/arm64\n"
	if out != want {
		t.Errorf("text output = %q, want %q", out, want)
	}

	out, _, err = executeCLI(t, "version", "--json")
	if err != nil {
		t.Fatalf("version --json: %v", err)
	}
	var resp jsonResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	var info versionInfo
	decodeData(t, resp, &info)
	if info.Commit != "deadbeef" || info.GOOS != "darwin" || info.Version != "v1.2.3" {
		t.Errorf("unexpected version data: %+v", info)
	}
}
