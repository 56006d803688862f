package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/usdAG/reftool/internal/buildinfo"
	"github.com/usdAG/reftool/internal/commands"
)

const defaultModulePath = "github.com/usdAG/reftool"

type versionInfo struct {
	Version    string `json:"version"`
	ModulePath string `json:"module_path"`
	Commit     string `json:"commit,omitempty"`
	CommitTime string `json:"commit_time,omitempty"`
	Modified   bool   `json:"modified"`
	GoVersion  string `json:"go_version"`
	GOOS       string `json:"goos"`
	GOARCH     string `json:"goarch"`
}

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

var versionCmd = &cobra.Command{
	Use:   commands.Use("version"),
	Short: commands.Registry["version"].Description,
	Args:  commands.PositionalArgs("version"),
	RunE: func(cmd *cobra.Command, args []string) error {
		info := currentVersionInfo()
		if isJSONOutput() {
			outputSuccess(info, nil)
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), info.String())
		return nil
	},
}

// String formats the version for humans:
//
//	ref v1.2.3 (abc123, 2026-02-14T17:00:00Z, modified)
//	github.com/usdAG/reftool go1.24.0 linux/amd64
func (v versionInfo) String() string {
	var details []string
	if v.Commit != "" {
		details = append(details, v.Commit)
	}
	if v.CommitTime != "" {
		details = append(details, v.CommitTime)
	}
	if v.Modified {
		details = append(details, "modified")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "ref %s", v.Version)
	if len(details) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(details, ", "))
	}
	fmt.Fprintf(&b, "\n%s %s %s/%s\n", v.ModulePath, v.GoVersion, v.GOOS, v.GOARCH)
	return b.String()
}

// currentVersionInfo prefers the module and VCS data embedded by the Go
// toolchain and fills gaps from the link-time values in buildinfo.
func currentVersionInfo() versionInfo {
	info := versionInfo{
		Version:    "devel",
		ModulePath: defaultModulePath,
		GoVersion:  runtime.Version(),
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
	}

	if bi, ok := readBuildInfo(); ok && bi != nil {
		settings := make(map[string]string, len(bi.Settings))
		for _, s := range bi.Settings {
			settings[s.Key] = s.Value
		}

		setIfPresent(&info.ModulePath, bi.Main.Path)
		setIfPresent(&info.GoVersion, bi.GoVersion)
		setIfPresent(&info.GOOS, settings["GOOS"])
		setIfPresent(&info.GOARCH, settings["GOARCH"])
		info.Version = normalizeVersion(bi.Main.Version)
		info.Commit = settings["vcs.revision"]
		info.CommitTime = settings["vcs.time"]
		info.Modified = strings.EqualFold(settings["vcs.modified"], "true")
	}

	if info.Version == "devel" {
		info.Version = normalizeVersion(buildinfo.Version)
	}
	setIfEmpty(&info.Commit, buildinfo.Commit)
	setIfEmpty(&info.CommitTime, buildinfo.Date)
	return info
}

func normalizeVersion(version string) string {
	if version == "" || version == "(devel)" {
		return "devel"
	}
	return version
}

func setIfPresent(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

func setIfEmpty(dst *string, value string) {
	if *dst == "" {
		*dst = value
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
