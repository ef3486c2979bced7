package main

// processSmallDataFlag forwards -G<size> to the linker. Only MIPS has a
// small data section; elsewhere the flag is left unclaimed.
func processSmallDataFlag(tc *toolChain, opts *optionSet, builder *commandBuilder) {
	if !tc.target.isMIPS() {
		return
	}
	if a := opts.getLastArg(optG); a != nil {
		builder.addArgs("-G" + a.value())
	}
}
