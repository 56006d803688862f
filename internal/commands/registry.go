// Package commands provides a central registry of ref CLI commands.
// This registry is the single source of truth for command metadata:
// help text, usage lines and argument counts are derived from it.
package commands

// Meta defines metadata for a CLI command.
type Meta struct {
	Name        string     // Command name (e.g., "show", "copy")
	Description string     // Short description
	LongDesc    string     // Long description (for --help)
	Args        []ArgMeta  // Positional arguments
	Flags       []FlagMeta // Command flags
	Examples    []string   // Usage examples
}

// ArgMeta defines a positional argument.
type ArgMeta struct {
	Name        string // Argument name
	Description string // Description
	Required    bool   // Is this argument required?
	Variadic    bool   // Accepts any number of trailing values
	DynamicComp string // Dynamic completion type: "references", "params"
}

// FlagMeta defines a command flag.
type FlagMeta struct {
	Name        string   // Flag name (e.g., "filter", "encode")
	Short       string   // Short flag (e.g., "f" for -f)
	Description string   // Description
	Type        FlagType // Type of flag
	Default     string   // Default value
	Examples    []string // Example values
}

// FlagType represents the type of a flag.
type FlagType string

const (
	FlagTypeString FlagType = "string"
	FlagTypeBool   FlagType = "bool"
	FlagTypeEnum   FlagType = "enum" // Closed set of values, listed in Examples
)

// Dynamic completion types.
const (
	CompleteReferences = "references"
	CompleteParams     = "params"
)

// Registry holds all registered commands.
var Registry = map[string]Meta{
	"show": {
		Name:        "show",
		Description: "Render one or more references",
		LongDesc: `Renders references as numbered, column-aligned notes grouped under
their item headlines.

When several references are given they are joined into one listing and
every headline is prefixed with the name of the reference it came from.
Note numbers are assigned in load order and stay stable for 'ref copy'.`,
		Args: []ArgMeta{
			{Name: "reference", Description: "Reference name (file name without .yml)", Required: true, Variadic: true, DynamicComp: CompleteReferences},
		},
		Flags: []FlagMeta{
			{Name: "filter", Short: "f", Description: "Only show notes whose text matches this regular expression", Type: FlagTypeString, Examples: []string{"nmap", "^curl"}},
			{Name: "fit", Description: "Shrink comment and text columns to the terminal width", Type: FlagTypeBool},
		},
		Examples: []string{
			"ref show networking",
			"ref show networking shells --filter nc",
			"ref show networking --fit",
		},
	},
	"list": {
		Name:        "list",
		Description: "List available references",
		LongDesc: `Lists the names of all references below the reference path, sorted.

An optional prefix narrows the list. With --long every name is followed by
the first paragraph of the reference description.`,
		Args: []ArgMeta{
			{Name: "prefix", Description: "Only list names starting with this prefix", DynamicComp: CompleteReferences},
		},
		Flags: []FlagMeta{
			{Name: "long", Short: "l", Description: "Show a one-line summary next to each name", Type: FlagTypeBool},
		},
		Examples: []string{
			"ref list",
			"ref list net",
			"ref list --long",
		},
	},
	"search": {
		Name:        "search",
		Description: "Find references whose content matches a regular expression",
		LongDesc: `Searches the raw text of every reference file and prints the names of
the references that match.

With --show the matching references are joined and rendered instead.`,
		Args: []ArgMeta{
			{Name: "expression", Description: "Regular expression matched against file contents", Required: true},
		},
		Flags: []FlagMeta{
			{Name: "show", Short: "s", Description: "Render the joined matching references", Type: FlagTypeBool},
		},
		Examples: []string{
			"ref search nmap",
			"ref search 'curl.*-o' --show",
		},
	},
	"info": {
		Name:        "info",
		Description: "Show a reference description and summary",
		Args: []ArgMeta{
			{Name: "reference", Description: "Reference name", Required: true, DynamicComp: CompleteReferences},
		},
		Examples: []string{
			"ref info networking",
		},
	},
	"copy": {
		Name:        "copy",
		Description: "Copy a note to the clipboard",
		LongDesc: `Copies the text of a note to the clipboard.

Parameters such as <HOST> are replaced with values given as key=value
arguments (keys are case-insensitive). The result can be encoded before it
is copied.

Encodings:
  url     query escaping, space becomes +
  URL     every byte percent-encoded
  hex     hexadecimal
  json    JSON string body
  base64  standard base64
  html    HTML special characters escaped
  HTML    every byte as a numeric character reference`,
		Args: []ArgMeta{
			{Name: "reference", Description: "Reference name", Required: true, DynamicComp: CompleteReferences},
			{Name: "number", Description: "Note number as shown by 'ref show'", Required: true},
			{Name: "args", Description: "Parameter values as key=value", Variadic: true, DynamicComp: CompleteParams},
		},
		Flags: []FlagMeta{
			{Name: "encode", Short: "e", Description: "Encode the note before copying", Type: FlagTypeEnum, Examples: []string{"url", "URL", "hex", "json", "base64", "html", "HTML"}},
			{Name: "print", Short: "p", Description: "Print the note instead of copying it", Type: FlagTypeBool},
		},
		Examples: []string{
			"ref copy networking 1 host=10.0.0.1",
			"ref copy networking 3 url='http://x/?a=b' --encode url",
			"ref copy shells 1 port=4444 --print",
		},
	},
	"args": {
		Name:        "args",
		Description: "List the parameters of a note",
		Args: []ArgMeta{
			{Name: "reference", Description: "Reference name", Required: true, DynamicComp: CompleteReferences},
			{Name: "number", Description: "Note number", Required: true},
		},
		Examples: []string{
			"ref args networking 2",
		},
	},
	"complete": {
		Name:        "complete",
		Description: "Print completion candidates for a note parameter",
		LongDesc: `Prints the completion candidates configured for one parameter of a note,
one per line. Parameters without configuration complete to [FILE]; IP
completion prints [IP]; script completion runs the configured completer
from the completer path.`,
		Args: []ArgMeta{
			{Name: "reference", Description: "Reference name", Required: true, DynamicComp: CompleteReferences},
			{Name: "number", Description: "Note number", Required: true},
			{Name: "param", Description: "Parameter name", Required: true},
		},
		Examples: []string{
			"ref complete networking 2 port",
		},
	},
	"pick": {
		Name:        "pick",
		Description: "Pick a note interactively and copy it",
		Args: []ArgMeta{
			{Name: "reference", Description: "Reference name", Required: true, Variadic: true, DynamicComp: CompleteReferences},
		},
		Flags: []FlagMeta{
			{Name: "print", Short: "p", Description: "Print the chosen note instead of copying it", Type: FlagTypeBool},
		},
		Examples: []string{
			"ref pick networking",
		},
	},
	"new": {
		Name:        "new",
		Description: "Create a skeleton reference file",
		LongDesc: `Creates a new reference file below the reference path. The file name is
derived from the title; slashes create subdirectories. Existing files are
never overwritten.`,
		Args: []ArgMeta{
			{Name: "title", Description: "Reference title (e.g., 'Web/SQL Injection')", Required: true},
		},
		Examples: []string{
			"ref new 'Reverse Shells'",
			"ref new web/xss",
		},
	},
	"config": {
		Name:        "config",
		Description: "Manage the configuration file",
	},
	"config init": {
		Name:        "init",
		Description: "Write a commented default configuration file",
		Examples: []string{
			"ref config init",
			"ref --config ./ref.toml config init",
		},
	},
	"config path": {
		Name:        "path",
		Description: "Print the configuration file path",
	},
	"version": {
		Name:        "version",
		Description: "Show ref version and build information",
	},
}
