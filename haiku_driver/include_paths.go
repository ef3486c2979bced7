package main

import (
	"path/filepath"
	"strings"
)

// Searched in this order, relative to <system root>/develop/headers.
var haikuSystemHeaderDirs = []string{
	"os",
	"os/app",
	"os/device",
	"os/drivers",
	"os/game",
	"os/interface",
	"os/kernel",
	"os/locale",
	"os/mail",
	"os/media",
	"os/midi",
	"os/midi2",
	"os/net",
	"os/opengl",
	"os/storage",
	"os/support",
	"os/translation",
	"os/add-ons/graphics",
	"os/add-ons/input_server",
	"os/add-ons/mail_daemon",
	"os/add-ons/registrar",
	"os/add-ons/screen_saver",
	"os/add-ons/tracker",
	"os/be_apps/NetPositive",
	"os/be_apps/Tracker",
	"bsd",
	"glibc",
	"gnu",
	"posix",
}

type includeDir struct {
	path string
	// Headers in this directory are implicitly extern "C".
	externC bool
}

// calcSystemIncludeDirs returns the system header directories for the
// preprocessor. Directories are not checked for existence.
func calcSystemIncludeDirs(tc *toolChain, opts *optionSet) []includeDir {
	if opts.hasArg(optNostdinc) {
		return nil
	}

	var dirs []includeDir
	if !opts.hasArg(optNobuiltininc) {
		dirs = append(dirs, includeDir{path: filepath.Join(tc.resourceDir, "include")})
	}

	if opts.hasArg(optNostdlibinc) {
		return dirs
	}

	// Include directories fixed at build time replace the system ones.
	if tc.cfg.cIncludeDirs != "" {
		for _, dir := range strings.Split(tc.cfg.cIncludeDirs, ":") {
			prefix := ""
			if filepath.IsAbs(dir) {
				prefix = tc.sysroot
			}
			dirs = append(dirs, includeDir{path: prefix + dir, externC: true})
		}
		return dirs
	}

	headersRoot := filepath.Join(tc.cfg.systemRoot, "develop/headers")
	for _, dir := range haikuSystemHeaderDirs {
		dirs = append(dirs, includeDir{path: filepath.Join(headersRoot, dir)})
	}
	return append(dirs, includeDir{path: headersRoot})
}

// calcCXXStdlibIncludeDirs returns the C++ standard library header
// directories, searched before the system ones.
func calcCXXStdlibIncludeDirs(tc *toolChain, opts *optionSet) []includeDir {
	if opts.hasArg(optNostdinc, optNostdlibinc, optNostdincxx) {
		return nil
	}
	cxxRoot := tc.sysroot + "/system/develop/headers/c++"
	switch tc.getCXXStdlibType(opts) {
	case libcxxType:
		return []includeDir{{path: cxxRoot + "/v1"}}
	default:
		return []includeDir{
			{path: cxxRoot},
			{path: cxxRoot + "/" + tc.target.target},
			{path: cxxRoot + "/backward"},
		}
	}
}

// calcIncludeCommand renders the include directories as cc1 arguments.
func calcIncludeCommand(tc *toolChain, opts *optionSet) *command {
	builder := newCommandBuilder("")
	var dirs []includeDir
	if opts.isCXXMode() {
		dirs = append(dirs, calcCXXStdlibIncludeDirs(tc, opts)...)
	}
	dirs = append(dirs, calcSystemIncludeDirs(tc, opts)...)
	for _, dir := range dirs {
		if dir.externC {
			builder.addArgs("-internal-externc-isystem", dir.path)
		} else {
			builder.addArgs("-internal-isystem", dir.path)
		}
	}
	return builder.build()
}
