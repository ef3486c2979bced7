package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
)

func callLinker(env env, cfg *config, inputCmd *command) int {
	exitCode, err := callLinkerInternal(env, cfg, inputCmd)
	if err != nil {
		printDriverError(env.stderr(), err)
		exitCode = 1
	}
	return exitCode
}

func callLinkerInternal(env env, cfg *config, inputCmd *command) (exitCode int, err error) {
	opts, err := parseOptions(inputCmd.Args)
	if err != nil {
		return 0, err
	}
	env = processPrintCommandsFlags(env, cfg, opts)
	linkCmd, err := calcLinkCommandFromOptions(env, cfg, opts)
	if err != nil {
		return 0, err
	}
	reportUnusedArgs(env, opts)
	// Note: We return an exit code only if the underlying env is not
	// really doing an exec, e.g. dryRunEnv.
	return wrapSubprocessErrorWithSourceLoc(linkCmd, env.exec(linkCmd))
}

func calcLinkCommandFromOptions(env env, cfg *config, opts *optionSet) (*command, error) {
	tc := newToolChain(env, cfg, opts)
	opts.claimAllArgs(optDriverMode)
	return calcLinkCommand(tc, opts, opts.linkerInputs(), getLinkOutput(opts))
}

func getLinkOutput(opts *optionSet) linkOutput {
	return newFileOutput(opts.getLastArgValue(optOutput, "a.out"))
}

func callIncludes(env env, cfg *config, inputCmd *command) int {
	if err := callIncludesInternal(env, cfg, inputCmd); err != nil {
		printDriverError(env.stderr(), err)
		return 1
	}
	return 0
}

func callIncludesInternal(env env, cfg *config, inputCmd *command) error {
	opts, err := parseOptions(inputCmd.Args)
	if err != nil {
		return err
	}
	tc := newToolChain(env, cfg, opts)
	includeCmd := calcIncludeCommand(tc, opts)
	for _, arg := range includeCmd.Args {
		if _, err := fmt.Fprintln(env.stdout(), arg); err != nil {
			return wrapErrorwithSourceLocf(err, "failed to print include arguments")
		}
	}
	return nil
}

func reportUnusedArgs(env env, opts *optionSet) {
	for _, a := range opts.unclaimedArgs() {
		warnf(env, "argument unused during compilation: '%s'", a)
	}
}

func warnf(env env, format string, v ...interface{}) {
	fmt.Fprintf(env.stderr(), "%s %s\n", warningColor.Sprint("warning:"), fmt.Sprintf(format, v...))
}

func printDriverError(writer io.Writer, driverErr error) {
	if _, ok := driverErr.(userError); ok {
		fmt.Fprintf(writer, "%s %s\n", errorColor.Sprint("error:"), driverErr)
	} else {
		fmt.Fprintf(writer,
			"%s Internal error. Please report to the Haiku toolchain maintainers.\n%s\n",
			errorColor.Sprint("error:"), strings.TrimSpace(driverErr.Error()))
	}
}
