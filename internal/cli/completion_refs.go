package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/usdAG/reftool/internal/commands"
	"github.com/usdAG/reftool/internal/config"
	"github.com/usdAG/reftool/internal/logging"
	"github.com/usdAG/reftool/internal/reference"
)

const maxReferenceCompletionResults = 200

// completeArgs returns the ValidArgsFunction for the registered command at
// path, completing whatever the registry declares for the next argument.
func completeArgs(path string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		switch commands.DynamicCompletion(path, len(args)) {
		case commands.CompleteReferences:
			return completeReferenceNames(toComplete)
		case commands.CompleteParams:
			return completeParams(cmd, args, toComplete)
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}

// completionLibrary returns a fresh library, loading the config quietly
// when running under cobra's completion command, which skips
// PersistentPreRunE. Note numbers restart at 1 for every library.
func completionLibrary() *reference.Library {
	if cfg == nil {
		var (
			loaded *config.Config
			err    error
		)
		if configPath != "" {
			loaded, err = config.LoadFrom(configPath)
		} else {
			loaded, err = config.Load()
		}
		if err != nil {
			return nil
		}
		cfg = loaded
	}
	lib := reference.NewLibrary(cfg.Reference.ReferencePath, cfg.Reference.CompleterPath)
	lib.SetLogger(logging.Discard())
	return lib
}

func completeReferenceNames(toComplete string) ([]string, cobra.ShellCompDirective) {
	lib := completionLibrary()
	if lib == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	names, err := lib.List(toComplete)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	if len(names) > maxReferenceCompletionResults {
		names = names[:maxReferenceCompletionResults]
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// completeParams completes key=value words for a note. Before the "=" it
// offers the parameters not yet given; after it, the candidates configured
// for that parameter.
func completeParams(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	lib := completionLibrary()
	if lib == nil || len(args) < 2 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ref, err := lib.Load(args[0])
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	note, err := ref.Note(args[1])
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	key, partial, hasValue := strings.Cut(toComplete, "=")
	if !hasValue {
		var out []string
		for _, name := range note.Missing(args[2:]) {
			if strings.HasPrefix(name, strings.ToLower(key)) {
				out = append(out, name+"=")
			}
		}
		return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return paramCandidates(lib.Complete(ctx, *note, key), key, partial)
}

// paramCandidates turns completion lookups into shell words. The [FILE]
// marker falls back to the shell's file completion.
func paramCandidates(candidates []string, key, partial string) ([]string, cobra.ShellCompDirective) {
	if len(candidates) == 1 {
		switch candidates[0] {
		case reference.DefaultCompletion:
			return nil, cobra.ShellCompDirectiveDefault
		case reference.IPCompletion:
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
	}

	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(c, partial) {
			out = append(out, key+"="+c)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
