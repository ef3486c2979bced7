package main

import (
	"path/filepath"
)

// lastEnables reports whether the last of pos/neg given is one of pos.
func lastEnables(opts *optionSet, neg optionID, pos ...optionID) bool {
	a := opts.getLastArg(append(pos, neg)...)
	return a != nil && a.id != neg
}

func needsProfileRT(opts *optionSet) bool {
	return lastEnables(opts, optFnoProfileGenerate, optFprofileGenerate, optFprofileGenerateEQ) ||
		lastEnables(opts, optFnoProfileInstrGenerate, optFprofileInstrGenerate, optFprofileInstrGenerateEQ)
}

func needsGCovInstrumentation(opts *optionSet) bool {
	return opts.hasFlag(optFprofileArcs, optFnoProfileArcs, false) || opts.hasArg(optCoverage)
}

// addProfileRTLibs links the compiler-rt profile runtime when any
// profiling or coverage flag is given.
func addProfileRTLibs(tc *toolChain, opts *optionSet, builder *commandBuilder) {
	if !needsProfileRT(opts) && !needsGCovInstrumentation(opts) {
		return
	}
	builder.addArgs(tc.getCompilerRT("profile"))
}

// getCompilerRT prefers the per-target runtime directory and falls back to
// the per-OS layout.
func (tc *toolChain) getCompilerRT(component string) string {
	perTarget := filepath.Join(tc.resourceDir, "lib", tc.target.target, "libclang_rt."+component+".a")
	if tc.pathExists(perTarget) {
		return perTarget
	}
	return filepath.Join(tc.resourceDir, "lib", "haiku", "libclang_rt."+component+"-"+tc.target.arch+".a")
}
