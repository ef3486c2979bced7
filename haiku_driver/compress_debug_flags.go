package main

func addLinkerCompressDebugSectionsOption(tc *toolChain, opts *optionSet, builder *commandBuilder) {
	a := opts.getLastArg(optGz, optGzEQ)
	if a == nil {
		return
	}
	if a.id == optGz {
		builder.addArgs("--compress-debug-sections=zlib")
		return
	}
	switch a.value() {
	case "none", "zlib", "zstd":
		builder.addArgs("--compress-debug-sections=" + a.value())
	default:
		warnf(tc.env, "unsupported argument '%s' to option '-gz='", a.value())
	}
}
