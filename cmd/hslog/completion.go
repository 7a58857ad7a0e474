package main

import (
	"strings"

	"github.com/spf13/cobra"
)

// The completion command itself is cobra's default one; this file only adds
// value completion for the event type flags.

// completeEventTypes completes comma-separated event type lists, skipping
// types already present in the input or on the flag. Candidates carry the
// already-typed prefix so every shell replaces the whole word.
func completeEventTypes(flagName string) func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		parts := strings.Split(toComplete, ",")
		typed := parts[:len(parts)-1]
		current := strings.ToLower(strings.TrimSpace(parts[len(parts)-1]))

		prefix := ""
		if len(typed) > 0 {
			prefix = strings.Join(typed, ",") + ","
		}

		used := make(map[string]bool)
		for _, v := range typed {
			used[strings.ToLower(strings.TrimSpace(v))] = true
		}
		if vals, err := cmd.Flags().GetStringSlice(flagName); err == nil {
			for _, v := range vals {
				used[strings.ToLower(strings.TrimSpace(v))] = true
			}
		}

		var candidates []string
		for _, t := range ValidEventTypeNames() {
			if used[t] || !strings.HasPrefix(t, current) {
				continue
			}
			candidates = append(candidates, prefix+t)
		}

		return candidates, cobra.ShellCompDirectiveNoSpace | cobra.ShellCompDirectiveNoFileComp
	}
}

func registerEventTypeCompletion(cmd *cobra.Command, flagName string) {
	_ = cmd.RegisterFlagCompletionFunc(flagName, completeEventTypes(flagName))
}
