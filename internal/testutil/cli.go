package testutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/usdAG/reftool/internal/logging"
)

// The ref binary is built once per test process.
var (
	buildOnce sync.Once
	binary    string
	buildErr  error
)

// CLIResult is the decoded --json envelope of one ref invocation.
type CLIResult struct {
	OK       bool                   `json:"ok"`
	Data     map[string]interface{} `json:"data,omitempty"`
	Error    *CLIError              `json:"error,omitempty"`
	Warnings []CLIWarning           `json:"warnings,omitempty"`
	Meta     *CLIMeta               `json:"meta,omitempty"`

	Raw      string `json:"-"`
	ExitCode int    `json:"-"`
}

// CLIError mirrors the error object of the envelope.
type CLIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// CLIWarning mirrors one entry of the warnings list.
type CLIWarning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CLIMeta mirrors the meta object.
type CLIMeta struct {
	Count int `json:"count,omitempty"`
}

// BuildCLI compiles ./cmd/ref into a temporary directory and returns the
// binary path.
func BuildCLI(t *testing.T) string {
	t.Helper()
	buildOnce.Do(func() {
		root, err := moduleRoot()
		if err != nil {
			buildErr = err
			return
		}
		dir, err := os.MkdirTemp("", "reftool-bin-*")
		if err != nil {
			buildErr = err
			return
		}
		name := "ref"
		if runtime.GOOS == "windows" {
			name += ".exe"
		}
		binary = filepath.Join(dir, name)

		cmd := exec.Command("go", "build", "-o", binary, "./cmd/ref")
		cmd.Dir = root
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = fmt.Errorf("go build: %w\n%s", err, out)
		}
	})
	if buildErr != nil {
		t.Fatalf("building ref: %v", buildErr)
	}
	return binary
}

func moduleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found")
		}
		dir = parent
	}
}

// RunCLI runs the ref binary with this library's config and --json and
// decodes the response.
func (l *TestLibrary) RunCLI(args ...string) *CLIResult {
	l.t.Helper()

	argv := append([]string{"--config", l.ConfigPath(), "--json"}, args...)
	cmd := exec.Command(BuildCLI(l.t), argv...)
	cmd.Env = append(os.Environ(), "HOME="+l.Home, logging.EnvLevel+"=error")
	out, err := cmd.Output()

	result := &CLIResult{}
	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	case err != nil:
		result.ExitCode = -1
	}

	if err := json.Unmarshal(out, result); err != nil {
		result.OK = false
		result.Error = &CLIError{Code: "PARSE_ERROR", Message: err.Error()}
	}
	result.Raw = string(out)
	return result
}

// MustSucceed stops the test unless the command reported ok.
func (r *CLIResult) MustSucceed(t *testing.T) *CLIResult {
	t.Helper()
	if !r.OK {
		t.Fatalf("command failed: %s\n%s", r.describeError(), r.Raw)
	}
	return r
}

// MustFail stops the test unless the command failed with code.
func (r *CLIResult) MustFail(t *testing.T, code string) *CLIResult {
	t.Helper()
	if r.OK || r.Error == nil {
		t.Fatalf("expected failure %s, got success\n%s", code, r.Raw)
	}
	if r.Error.Code != code {
		t.Fatalf("expected failure %s, got %s\n%s", code, r.describeError(), r.Raw)
	}
	return r
}

// MustFailWithMessage stops the test unless the command failed and its
// message or suggestion mentions substr.
func (r *CLIResult) MustFailWithMessage(t *testing.T, substr string) *CLIResult {
	t.Helper()
	if r.OK || r.Error == nil {
		t.Fatalf("expected failure, got success\n%s", r.Raw)
	}
	if !strings.Contains(r.Error.Message+"\n"+r.Error.Suggestion, substr) {
		t.Errorf("error %s does not mention %q", r.describeError(), substr)
	}
	return r
}

func (r *CLIResult) describeError() string {
	if r.Error == nil {
		return "no error"
	}
	return r.Error.Code + ": " + r.Error.Message
}

// DataString returns the string field key of the data object.
func (r *CLIResult) DataString(key string) string {
	s, _ := r.Data[key].(string)
	return s
}

// DataList returns the list field key of the data object.
func (r *CLIResult) DataList(key string) []interface{} {
	list, _ := r.Data[key].([]interface{})
	return list
}
