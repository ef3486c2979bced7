package main

type outputKind int32

const (
	outputInvalid outputKind = iota
	outputFile
	outputNothing
)

// linkOutput is either a file name or nothing, for jobs that only validate.
// The zero value is invalid.
type linkOutput struct {
	kind     outputKind
	filename string
}

func newFileOutput(filename string) linkOutput {
	return linkOutput{kind: outputFile, filename: filename}
}

func newNothingOutput() linkOutput {
	return linkOutput{kind: outputNothing}
}

func (output linkOutput) isFilename() bool {
	return output.kind == outputFile
}

func (output linkOutput) isNothing() bool {
	return output.kind == outputNothing
}

// calcLinkCommand assembles the linker invocation. The linker resolves
// symbols left to right, so every step appends in a fixed order.
func calcLinkCommand(tc *toolChain, opts *optionSet, inputs []string, output linkOutput) (*command, error) {
	// Consumed by earlier stages: "clang -g foo.o", "clang -emit-llvm foo.o"
	// and "clang -w foo.o" must not warn.
	opts.claimAllArgs(optGGroup, optEmitLLVM, optW)

	builder := newCommandBuilder(tc.getLinkerPath(opts))
	shared := opts.hasArg(optShared)
	static := opts.hasArg(optStatic)

	if tc.sysroot != "" {
		builder.addArgs("--sysroot=" + tc.sysroot)
	}

	builder.addArgs("--eh-frame-hdr")
	if static {
		builder.addArgs("-Bstatic")
	} else {
		if opts.hasArg(optRdynamic) {
			builder.addArgs("-export-dynamic")
		}
		if shared {
			builder.addArgs("-Bshareable")
		}
		builder.addArgs(tc.cfg.dtagsFlag())
	}

	processSmallDataFlag(tc, opts, builder)

	// Executables are shared objects on Haiku as well.
	builder.addArgs("-shared")
	if !shared {
		builder.addArgs("-no-undefined")
	}

	switch {
	case output.isFilename():
		builder.addArgs("-o", output.filename)
	case output.isNothing():
	default:
		return nil, newErrorwithSourceLocf("invalid output: %#v", output)
	}

	if !opts.hasArg(optNostdlib, optNostartfiles, optR) {
		builder.addArgs(tc.getFilePath("crtbeginS.o"))
		if !shared {
			builder.addArgs(tc.getFilePath("start_dyn.o"))
		}
		builder.addArgs(tc.getFilePath("init_term_dyn.o"))
	}

	opts.addAllArgs(builder, optLibPath)
	tc.addFilePathLibArgs(builder)
	opts.addAllArgs(builder, optTGroup)
	opts.addAllArgs(builder, optEntry)
	opts.addAllArgs(builder, optS)
	opts.addAllArgs(builder, optT_trace)
	opts.addAllArgs(builder, optZFlag)
	opts.addAllArgs(builder, optR)

	if tc.isUsingLTO(opts) {
		if len(inputs) == 0 {
			return nil, newErrorwithSourceLocf("must have at least one input for LTO")
		}
		addLTOOptions(tc, opts, builder, tc.isThinLTO(opts))
	}

	addLinkerCompressDebugSectionsOption(tc, opts, builder)
	builder.addArgs(inputs...)

	if !opts.hasArg(optNostdlib, optNodefaultlibs, optR) {
		staticOpenMP := opts.hasArg(optStaticOpenMP) && !static
		addOpenMPRuntime(tc, opts, builder, staticOpenMP)

		if opts.isCXXMode() && tc.shouldLinkCXXStdlib(opts) {
			tc.addCXXStdlibLibArgs(opts, builder)
		}

		// libgcc and libroot depend on each other, so both are listed
		// twice with the unwinder after each libgcc.
		builder.addArgs("-lgcc")
		addUnwindLibArgs(static, builder)
		builder.addArgs("-lroot")
		builder.addArgs("-lgcc")
		addUnwindLibArgs(static, builder)
	}

	if !opts.hasArg(optNostdlib, optNostartfiles, optR) {
		if shared {
			builder.addArgs(tc.getFilePath("crtendS.o"))
		} else {
			builder.addArgs(tc.getFilePath("crtend.o"))
		}
		builder.addArgs(tc.getFilePath("crtn.o"))
	}

	addProfileRTLibs(tc, opts, builder)

	cmd := builder.build()
	cmd.Inputs = inputs
	if output.isFilename() {
		cmd.Output = output.filename
	}
	return cmd, nil
}

func addUnwindLibArgs(static bool, builder *commandBuilder) {
	if static {
		builder.addArgs("-lgcc_eh")
		return
	}
	builder.addArgs("--push-state", "--as-needed", "-lgcc_s", "--no-as-needed", "--pop-state")
}
