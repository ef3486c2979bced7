package main

type openMPRuntime int32

const (
	openMPRuntimeUnknown openMPRuntime = iota
	openMPRuntimeOMP
	openMPRuntimeGOMP
	openMPRuntimeIOMP5
)

func getOpenMPRuntime(tc *toolChain, opts *optionSet) openMPRuntime {
	name := opts.getLastArgValue(optFopenmpEQ, "libomp")
	switch name {
	case "libomp":
		return openMPRuntimeOMP
	case "libgomp":
		return openMPRuntimeGOMP
	case "libiomp5":
		return openMPRuntimeIOMP5
	}
	warnf(tc.env, "unsupported argument '%s' to option '-fopenmp='", name)
	return openMPRuntimeUnknown
}

// addOpenMPRuntime links the OpenMP runtime selected by -fopenmp[=]. Returns
// whether a runtime was added.
func addOpenMPRuntime(tc *toolChain, opts *optionSet, builder *commandBuilder, forceStaticRuntime bool) bool {
	if a := opts.getLastArg(optFopenmp, optFopenmpEQ, optFnoOpenmp); a == nil || a.id == optFnoOpenmp {
		return false
	}
	var lib string
	switch getOpenMPRuntime(tc, opts) {
	case openMPRuntimeOMP:
		lib = "-lomp"
	case openMPRuntimeGOMP:
		lib = "-lgomp"
	case openMPRuntimeIOMP5:
		lib = "-liomp5"
	default:
		return false
	}
	if forceStaticRuntime {
		builder.addArgs("-Bstatic")
	}
	builder.addArgs(lib)
	if forceStaticRuntime {
		builder.addArgs("-Bdynamic")
	}
	return true
}
