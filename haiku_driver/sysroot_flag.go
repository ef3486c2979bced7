package main

// processSysrootFlag resolves the sysroot for one invocation. --sysroot wins,
// then the SYSROOT environment variable, then the config default.
func processSysrootFlag(env env, cfg *config, opts *optionSet) string {
	if a := opts.getLastArg(optSysroot); a != nil {
		return a.value()
	}
	if sysroot, ok := env.getenv("SYSROOT"); ok && sysroot != "" {
		return sysroot
	}
	return cfg.defaultSysroot
}
