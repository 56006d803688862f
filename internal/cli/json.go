package cli

import (
	"encoding/json"
	"fmt"
)

// jsonOutput is set by --json.
var jsonOutput bool

// Response is the envelope every command prints in --json mode.
type Response struct {
	OK       bool        `json:"ok"`
	Data     interface{} `json:"data,omitempty"`
	Error    *ErrorInfo  `json:"error,omitempty"`
	Warnings []Warning   `json:"warnings,omitempty"`
	Meta     *Meta       `json:"meta,omitempty"`
}

// ErrorInfo describes a failed command. Code is one of the constants in
// errors.go.
type ErrorInfo struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Warning is a problem that did not stop the command.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Meta carries counts for list-like results.
type Meta struct {
	Count int `json:"count,omitempty"`
}

func outputJSON(resp Response) {
	enc := json.NewEncoder(stdout())
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp)
}

func outputSuccess(data interface{}, meta *Meta) {
	outputSuccessWithWarnings(data, nil, meta)
}

func outputSuccessWithWarnings(data interface{}, warnings []Warning, meta *Meta) {
	outputJSON(Response{OK: true, Data: data, Warnings: warnings, Meta: meta})
}

func outputError(code, message, suggestion string) {
	outputJSON(Response{Error: &ErrorInfo{Code: code, Message: message, Suggestion: suggestion}})
}

func isJSONOutput() bool {
	return jsonOutput
}

// handleError reports err under code. In --json mode the error is printed as
// an envelope and nil is returned so Execute stays quiet; in text mode the
// suggestion is appended and Execute prints the result.
func handleError(code string, err error, suggestion string) error {
	if jsonOutput {
		outputError(code, err.Error(), suggestion)
		return nil
	}
	if suggestion != "" {
		return fmt.Errorf("%w\n%s", err, suggestion)
	}
	return err
}

// abort is handleError for failures outside RunE: the error is returned in
// both modes so cobra stops before the command runs.
func abort(code string, err error, suggestion string) error {
	if !jsonOutput {
		return handleError(code, err, suggestion)
	}
	outputError(code, err.Error(), suggestion)
	return err
}

func handleErrorMsg(code, message, suggestion string) error {
	return handleError(code, fmt.Errorf("%s", message), suggestion)
}

// handleReferenceError maps library errors to their stable codes.
func handleReferenceError(err error) error {
	code, suggestion := classifyError(err)
	return handleError(code, err, suggestion)
}
