// Command paramgen generates parameter struct pairs with merge and dispatch
// helpers from Go struct types, schema files or inline descriptor lists.
package main

import (
	"fmt"
	"os"
	"runtime/debug"
)

// deriveVersion inspects build info for module version or vcs revision.
// preference order: module semantic version -> short commit hash -> "devel".
func deriveVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			return bi.Main.Version
		}
		var revision string
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				revision = s.Value
				break
			}
		}
		if len(revision) >= 12 { // short hash for readability
			return revision[:12]
		}
		if revision != "" {
			return revision
		}
	}
	return "devel"
}

func main() {
	if err := newRootCommand(deriveVersion()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "paramgen: %v\n", err)
		os.Exit(1)
	}
}
