package main

import (
	"strings"
)

type optionID int32

const (
	optUnknown optionID = iota
	optInput

	// Linker inputs, kept in command line order together with optInput.
	optL_lib
	optWl
	optXlinker

	optStatic
	optShared
	optRdynamic
	optNostdlib
	optNostartfiles
	optNodefaultlibs
	optR
	optS
	optT_trace
	optZFlag
	optSysroot
	optG
	optGGroup
	optEmitLLVM
	optW
	optFlto
	optFltoEQ
	optFnoLto
	optFltoJobsEQ
	optStaticOpenMP
	optFopenmp
	optFopenmpEQ
	optFnoOpenmp
	optLibPath
	optTGroup
	optT
	optTbss
	optTdata
	optTtext
	optEntry
	optNobuiltininc
	optNostdinc
	optNostdlibinc
	optNostdincxx
	optNostdlibxx
	optStdlibEQ
	optFuseLdEQ
	optResourceDir
	optB
	optTarget
	optDriverMode
	optGz
	optGzEQ
	optFprofileGenerate
	optFprofileGenerateEQ
	optFprofileInstrGenerate
	optFprofileInstrGenerateEQ
	optFprofileArcs
	optCoverage
	optFnoProfileGenerate
	optFnoProfileInstrGenerate
	optFnoProfileArcs
	optOGroup
	optMcpuEQ
	optOutput
	optPrintCommandsOnly
	optVerbose
)

type optionKind int32

const (
	// -foo
	flagKind optionKind = iota
	// -foo=value, value may be empty
	joinedKind
	// -foo value
	separateKind
	// -foovalue or -foo value
	joinedOrSeparateKind
	// -foo,a,b,c
	commaJoinedKind
)

type optionInfo struct {
	id     optionID
	prefix string
	kind   optionKind
	group  optionID
}

var optionTable = []optionInfo{
	{id: optL_lib, prefix: "-l", kind: joinedOrSeparateKind},
	{id: optWl, prefix: "-Wl,", kind: commaJoinedKind},
	{id: optXlinker, prefix: "-Xlinker", kind: separateKind},

	{id: optStatic, prefix: "-static", kind: flagKind},
	{id: optShared, prefix: "-shared", kind: flagKind},
	{id: optRdynamic, prefix: "-rdynamic", kind: flagKind},
	{id: optNostdlib, prefix: "-nostdlib", kind: flagKind},
	{id: optNostartfiles, prefix: "-nostartfiles", kind: flagKind},
	{id: optNodefaultlibs, prefix: "-nodefaultlibs", kind: flagKind},
	{id: optR, prefix: "-r", kind: flagKind},
	{id: optS, prefix: "-s", kind: flagKind},
	{id: optT_trace, prefix: "-t", kind: flagKind},
	{id: optZFlag, prefix: "-Z", kind: flagKind},
	{id: optSysroot, prefix: "--sysroot=", kind: joinedKind},
	{id: optSysroot, prefix: "--sysroot", kind: separateKind},
	{id: optG, prefix: "-G", kind: joinedOrSeparateKind},
	{id: optGGroup, prefix: "-g", kind: joinedKind},
	{id: optEmitLLVM, prefix: "-emit-llvm", kind: flagKind},
	{id: optW, prefix: "-w", kind: flagKind},
	{id: optFlto, prefix: "-flto", kind: flagKind},
	{id: optFltoEQ, prefix: "-flto=", kind: joinedKind},
	{id: optFnoLto, prefix: "-fno-lto", kind: flagKind},
	{id: optFltoJobsEQ, prefix: "-flto-jobs=", kind: joinedKind},
	{id: optStaticOpenMP, prefix: "-static-openmp", kind: flagKind},
	{id: optFopenmp, prefix: "-fopenmp", kind: flagKind},
	{id: optFopenmpEQ, prefix: "-fopenmp=", kind: joinedKind},
	{id: optFnoOpenmp, prefix: "-fno-openmp", kind: flagKind},
	{id: optLibPath, prefix: "-L", kind: joinedOrSeparateKind},
	{id: optT, prefix: "-T", kind: joinedOrSeparateKind, group: optTGroup},
	{id: optTbss, prefix: "-Tbss", kind: separateKind, group: optTGroup},
	{id: optTdata, prefix: "-Tdata", kind: separateKind, group: optTGroup},
	{id: optTtext, prefix: "-Ttext", kind: separateKind, group: optTGroup},
	{id: optEntry, prefix: "-e", kind: joinedOrSeparateKind},
	{id: optNobuiltininc, prefix: "-nobuiltininc", kind: flagKind},
	{id: optNostdinc, prefix: "-nostdinc", kind: flagKind},
	{id: optNostdlibinc, prefix: "-nostdlibinc", kind: flagKind},
	{id: optNostdincxx, prefix: "-nostdinc++", kind: flagKind},
	{id: optNostdlibxx, prefix: "-nostdlib++", kind: flagKind},
	{id: optStdlibEQ, prefix: "-stdlib=", kind: joinedKind},
	{id: optFuseLdEQ, prefix: "-fuse-ld=", kind: joinedKind},
	{id: optResourceDir, prefix: "-resource-dir=", kind: joinedKind},
	{id: optResourceDir, prefix: "-resource-dir", kind: separateKind},
	{id: optB, prefix: "-B", kind: joinedOrSeparateKind},
	{id: optTarget, prefix: "--target=", kind: joinedKind},
	{id: optTarget, prefix: "-target", kind: separateKind},
	{id: optDriverMode, prefix: "--driver-mode=", kind: joinedKind},
	{id: optGz, prefix: "-gz", kind: flagKind},
	{id: optGzEQ, prefix: "-gz=", kind: joinedKind},
	{id: optFprofileGenerate, prefix: "-fprofile-generate", kind: flagKind},
	{id: optFprofileGenerateEQ, prefix: "-fprofile-generate=", kind: joinedKind},
	{id: optFprofileInstrGenerate, prefix: "-fprofile-instr-generate", kind: flagKind},
	{id: optFprofileInstrGenerateEQ, prefix: "-fprofile-instr-generate=", kind: joinedKind},
	{id: optFprofileArcs, prefix: "-fprofile-arcs", kind: flagKind},
	{id: optCoverage, prefix: "--coverage", kind: flagKind},
	{id: optCoverage, prefix: "-coverage", kind: flagKind},
	{id: optFnoProfileGenerate, prefix: "-fno-profile-generate", kind: flagKind},
	{id: optFnoProfileInstrGenerate, prefix: "-fno-profile-instr-generate", kind: flagKind},
	{id: optFnoProfileArcs, prefix: "-fno-profile-arcs", kind: flagKind},
	{id: optOGroup, prefix: "-O", kind: joinedKind},
	{id: optMcpuEQ, prefix: "-mcpu=", kind: joinedKind},
	{id: optOutput, prefix: "-o", kind: joinedOrSeparateKind},
	{id: optPrintCommandsOnly, prefix: "-###", kind: flagKind},
	{id: optVerbose, prefix: "-v", kind: flagKind},
}

type arg struct {
	id    optionID
	group optionID
	// Spelling of the option as matched in the table, e.g. "-L".
	spelling string
	values   []string
	// The tokens this option occupied on the command line.
	tokens  []string
	claimed bool
}

func (a *arg) matches(ids []optionID) bool {
	for _, id := range ids {
		if a.id == id || (a.group != optUnknown && a.group == id) {
			return true
		}
	}
	return false
}

func (a *arg) value() string {
	if len(a.values) == 0 {
		return ""
	}
	return a.values[0]
}

func (a *arg) claim() {
	a.claimed = true
}

func (a *arg) String() string {
	return strings.Join(a.tokens, " ")
}

// optionSet holds the parsed driver arguments of one invocation. It is
// never modified after parseOptions, except for the claimed bookkeeping.
type optionSet struct {
	args []*arg
}

func parseOptions(cmdArgs []string) (*optionSet, error) {
	opts := &optionSet{}
	for i := 0; i < len(cmdArgs); i++ {
		token := cmdArgs[i]
		if token == "-" || !strings.HasPrefix(token, "-") {
			opts.args = append(opts.args, &arg{
				id:     optInput,
				values: []string{token},
				tokens: []string{token},
			})
			continue
		}
		info, ok := matchOption(token)
		if !ok {
			opts.args = append(opts.args, &arg{
				id:       optUnknown,
				spelling: token,
				tokens:   []string{token},
			})
			continue
		}
		a := &arg{
			id:       info.id,
			group:    info.group,
			spelling: info.prefix,
			tokens:   []string{token},
		}
		rest := token[len(info.prefix):]
		switch info.kind {
		case flagKind:
		case joinedKind:
			a.values = []string{rest}
		case commaJoinedKind:
			for _, value := range strings.Split(rest, ",") {
				if value != "" {
					a.values = append(a.values, value)
				}
			}
		case separateKind, joinedOrSeparateKind:
			if info.kind == joinedOrSeparateKind && rest != "" {
				a.values = []string{rest}
				break
			}
			if i+1 >= len(cmdArgs) {
				return nil, newUserErrorf("argument to '%s' is missing (expected 1 value)", info.prefix)
			}
			i++
			a.values = []string{cmdArgs[i]}
			a.tokens = append(a.tokens, cmdArgs[i])
		}
		opts.args = append(opts.args, a)
	}
	return opts, nil
}

// Exact flag spellings win over joined prefixes; among prefixes the longest
// one wins.
func matchOption(token string) (optionInfo, bool) {
	var best optionInfo
	found := false
	for _, info := range optionTable {
		switch info.kind {
		case flagKind:
			if token == info.prefix {
				return info, true
			}
		case separateKind:
			if token != info.prefix {
				continue
			}
			if !found || len(info.prefix) > len(best.prefix) {
				best, found = info, true
			}
		default:
			if !strings.HasPrefix(token, info.prefix) {
				continue
			}
			if !found || len(info.prefix) > len(best.prefix) {
				best, found = info, true
			}
		}
	}
	return best, found
}

func (opts *optionSet) hasArg(ids ...optionID) bool {
	found := false
	for _, a := range opts.args {
		if a.matches(ids) {
			a.claim()
			found = true
		}
	}
	return found
}

// hasFlag returns whether the last of pos/neg given is pos, or def if
// neither is present.
func (opts *optionSet) hasFlag(pos optionID, neg optionID, def bool) bool {
	if a := opts.getLastArg(pos, neg); a != nil {
		return a.id == pos
	}
	return def
}

func (opts *optionSet) getLastArg(ids ...optionID) *arg {
	var last *arg
	for _, a := range opts.args {
		if a.matches(ids) {
			a.claim()
			last = a
		}
	}
	return last
}

func (opts *optionSet) getLastArgValue(id optionID, def string) string {
	if a := opts.getLastArg(id); a != nil {
		return a.value()
	}
	return def
}

func (opts *optionSet) allArgs(ids ...optionID) []*arg {
	var result []*arg
	for _, a := range opts.args {
		if a.matches(ids) {
			a.claim()
			result = append(result, a)
		}
	}
	return result
}

func (opts *optionSet) allArgValues(id optionID) []string {
	var values []string
	for _, a := range opts.allArgs(id) {
		values = append(values, a.values...)
	}
	return values
}

// addAllArgs forwards every occurrence of the given options as spelled on
// the command line.
func (opts *optionSet) addAllArgs(builder *commandBuilder, ids ...optionID) {
	for _, a := range opts.allArgs(ids...) {
		builder.addArgs(a.tokens...)
	}
}

func (opts *optionSet) claimAllArgs(ids ...optionID) {
	for _, a := range opts.args {
		if a.matches(ids) {
			a.claim()
		}
	}
}

func (opts *optionSet) unclaimedArgs() []*arg {
	var result []*arg
	for _, a := range opts.args {
		if !a.claimed && a.id != optInput {
			result = append(result, a)
		}
	}
	return result
}

// linkerInputs returns the input files and linker input options in
// command line order, rendered for the linker.
func (opts *optionSet) linkerInputs() []string {
	var inputs []string
	for _, a := range opts.allArgs(optInput, optL_lib, optWl, optXlinker) {
		switch a.id {
		case optL_lib:
			inputs = append(inputs, "-l"+a.value())
		default:
			inputs = append(inputs, a.values...)
		}
	}
	return inputs
}

func (opts *optionSet) isCXXMode() bool {
	return opts.getLastArgValue(optDriverMode, "gcc") == "g++"
}
