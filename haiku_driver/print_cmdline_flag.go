package main

import (
	"fmt"
)

// processPrintCommandsFlags wraps env for -### and -v. The command log is
// innermost so that -### records nothing.
func processPrintCommandsFlags(env env, cfg *config, opts *optionSet) env {
	env = processCommandLogEnv(env)
	verbose := opts.hasArg(optVerbose)
	if verbose || opts.hasArg(optPrintCommandsOnly) {
		fmt.Fprintf(env.stderr(), "Target: %s\n", cfg)
	}
	if opts.hasArg(optPrintCommandsOnly) {
		return &dryRunEnv{env}
	}
	if verbose {
		return &printingEnv{env}
	}
	return env
}
