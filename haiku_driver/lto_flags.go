package main

const pluginOptPrefix = "-plugin-opt="

func addLTOOptions(tc *toolChain, opts *optionSet, builder *commandBuilder, isThinLTO bool) {
	if cpu := opts.getLastArgValue(optMcpuEQ, ""); cpu != "" {
		builder.addArgs(pluginOptPrefix + "mcpu=" + cpu)
	}
	if level := ltoOptLevel(opts); level != "" {
		builder.addArgs(pluginOptPrefix + "O" + level)
	}
	if isThinLTO {
		builder.addArgs(pluginOptPrefix + "thinlto")
	}
	if jobs := opts.getLastArgValue(optFltoJobsEQ, ""); jobs != "" {
		builder.addArgs(pluginOptPrefix + "jobs=" + jobs)
	}
}

func ltoOptLevel(opts *optionSet) string {
	a := opts.getLastArg(optOGroup)
	if a == nil {
		return ""
	}
	switch level := a.value(); level {
	case "4", "fast":
		return "3"
	case "":
		return "1"
	case "g":
		return "1"
	case "s", "z":
		return "2"
	default:
		return level
	}
}
