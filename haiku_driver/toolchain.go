package main

import (
	"os"
	"path/filepath"
	"strings"
)

// toolChain is the config resolved against the options of one driver
// invocation. It is not modified after newToolChain.
type toolChain struct {
	cfg         *config
	env         env
	target      builderTarget
	sysroot     string
	resourceDir string
	gccInstall  gccInstallation
	// -B prefixes, searched before anything else.
	prefixes []string
	// Library search directories, in priority order.
	filePaths []string
	// Program search directories, in priority order.
	programPaths []string
}

type builderTarget struct {
	target string
	arch   string
	vendor string
	sys    string
}

func parseTarget(triple string) builderTarget {
	parts := strings.SplitN(triple, "-", 3)
	for len(parts) < 3 {
		parts = append(parts, "unknown")
	}
	return builderTarget{
		target: triple,
		arch:   parts[0],
		vendor: parts[1],
		sys:    parts[2],
	}
}

func (target builderTarget) isMIPS() bool {
	switch target.arch {
	case "mips", "mipsel", "mips64", "mips64el":
		return true
	}
	return false
}

func newToolChain(env env, cfg *config, opts *optionSet) *toolChain {
	tc := &toolChain{
		cfg:         cfg,
		env:         env,
		target:      parseTarget(opts.getLastArgValue(optTarget, cfg.triple)),
		sysroot:     processSysrootFlag(env, cfg, opts),
		resourceDir: opts.getLastArgValue(optResourceDir, cfg.resourceDir),
		prefixes:    opts.allArgValues(optB),
	}
	tc.gccInstall = detectGCCInstallation(env, cfg.systemRoot, tc.target.target)

	tc.addPathIfExists(tc.gccInstall.installPath, &tc.filePaths)
	for _, dir := range cfg.libraryDirs {
		tc.addPathIfExists(filepath.Join(cfg.systemRoot, dir), &tc.filePaths)
	}
	for _, dir := range cfg.programDirs {
		tc.programPaths = append(tc.programPaths, filepath.Join(cfg.systemRoot, dir))
	}
	if tc.gccInstall.binPath != "" {
		tc.programPaths = append(tc.programPaths, tc.gccInstall.binPath)
	}
	return tc
}

func (tc *toolChain) addPathIfExists(path string, paths *[]string) {
	if path != "" && tc.pathExists(path) {
		*paths = append(*paths, path)
	}
}

func (tc *toolChain) pathExists(path string) bool {
	_, err := os.Stat(tc.absPath(path))
	return err == nil
}

func (tc *toolChain) isDir(path string) bool {
	info, err := os.Stat(tc.absPath(path))
	return err == nil && info.IsDir()
}

func (tc *toolChain) absPath(path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(tc.env.getwd(), path)
	}
	return path
}

// prefixedPath places name inside a -B directory, or appends it to a -B
// prefix that is not a directory (e.g. -B/opt/bin/x86_64-).
func (tc *toolChain) prefixedPath(prefix string, name string) string {
	if tc.isDir(prefix) {
		return filepath.Join(prefix, name)
	}
	return prefix + name
}

// getFilePath returns the first existing name under the -B prefixes or the
// library search directories, or name itself.
func (tc *toolChain) getFilePath(name string) string {
	for _, prefix := range tc.prefixes {
		if candidate := tc.prefixedPath(prefix, name); tc.pathExists(candidate) {
			return candidate
		}
	}
	for _, dir := range tc.filePaths {
		if candidate := filepath.Join(dir, name); tc.pathExists(candidate) {
			return candidate
		}
	}
	return name
}

// getProgramPath searches the -B prefixes, the program directories and
// PATH, in that order, and falls back to name.
func (tc *toolChain) getProgramPath(name string) string {
	for _, prefix := range tc.prefixes {
		if candidate := tc.prefixedPath(prefix, name); tc.pathExists(candidate) {
			return candidate
		}
	}
	for _, dir := range tc.programPaths {
		if candidate := filepath.Join(dir, name); tc.pathExists(candidate) {
			return candidate
		}
	}
	if path, ok := tc.env.getenv("PATH"); ok {
		for _, dir := range filepath.SplitList(path) {
			if dir == "" {
				continue
			}
			if candidate := filepath.Join(dir, name); tc.pathExists(candidate) {
				return candidate
			}
		}
	}
	return name
}

func (tc *toolChain) getLinkerPath(opts *optionSet) string {
	useLinker := opts.getLastArgValue(optFuseLdEQ, "")
	if useLinker == "" {
		useLinker = tc.cfg.defaultLinker
	}
	if filepath.IsAbs(useLinker) {
		return useLinker
	}
	name := useLinker
	if !strings.HasPrefix(name, "ld") {
		name = "ld." + name
	}
	return tc.getProgramPath(name)
}

// addFilePathLibArgs forwards the library search directories found at
// construction time as -L flags.
func (tc *toolChain) addFilePathLibArgs(builder *commandBuilder) {
	for _, path := range tc.filePaths {
		if path != "" {
			builder.addArgs("-L" + path)
		}
	}
}

func (tc *toolChain) getCXXStdlibType(opts *optionSet) cxxStdlibType {
	a := opts.getLastArg(optStdlibEQ)
	if a == nil || a.value() == "platform" {
		return tc.cfg.defaultCXXStdlib()
	}
	stdlib, ok := parseCXXStdlib(a.value())
	if !ok {
		warnf(tc.env, "invalid library name in argument '%s'", a)
		return tc.cfg.defaultCXXStdlib()
	}
	return stdlib
}

func (tc *toolChain) shouldLinkCXXStdlib(opts *optionSet) bool {
	return !opts.hasArg(optNostdlib, optNodefaultlibs, optNostdlibxx)
}

func (tc *toolChain) addCXXStdlibLibArgs(opts *optionSet, builder *commandBuilder) {
	switch tc.getCXXStdlibType(opts) {
	case libcxxType:
		builder.addArgs("-lc++")
	case libstdcxxType:
		builder.addArgs("-lstdc++")
	}
}

func (tc *toolChain) isUsingLTO(opts *optionSet) bool {
	a := opts.getLastArg(optFlto, optFltoEQ, optFnoLto)
	return a != nil && a.id != optFnoLto
}

func (tc *toolChain) isThinLTO(opts *optionSet) bool {
	a := opts.getLastArg(optFlto, optFltoEQ, optFnoLto)
	return a != nil && a.id == optFltoEQ && a.value() == "thin"
}
