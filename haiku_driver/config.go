package main

import (
	"fmt"
)

type cxxStdlibType int32

const (
	libstdcxxType cxxStdlibType = iota
	libcxxType
)

func (t cxxStdlibType) String() string {
	switch t {
	case libcxxType:
		return "libc++"
	default:
		return "libstdc++"
	}
}

type config struct {
	// Target triple used when no --target is given.
	triple string
	// Root of the installed system, /boot/system on Haiku.
	systemRoot string
	// Sysroot used when no --sysroot is given.
	defaultSysroot string
	// Compiler resource directory holding the builtin headers and
	// compiler-rt libraries.
	resourceDir   string
	defaultLinker string
	cxxStdlib     cxxStdlibType
	dwarfVersion  uint8
	// Whether the linker should emit DT_RUNPATH style dynamic tags.
	newDtags               bool
	picDefault             bool
	pieDefault             bool
	unwindTablesDefault    bool
	standaloneDebugDefault bool
	mathErrnoDefault       bool
	objcNonFragileABI      bool
	nativeLLVMSupport      bool
	// Library directories relative to systemRoot, in search order.
	libraryDirs []string
	// Program directories relative to systemRoot, in search order.
	programDirs []string
	// Colon separated C include directories fixed at build time.
	cIncludeDirs string
}

// ConfigName can be set via a linker flag.
// Value has to be one of:
// - "haiku.r1"
// - "haiku.legacy"
var ConfigName = "haiku.r1"

// CIncludeDirs can be set via a linker flag.
// E.g. go build -ldflags '-X main.CIncludeDirs=/boot/system/develop/headers/posix'.
var CIncludeDirs = ""

// Returns the configuration matching ConfigName and CIncludeDirs.
func getRealConfig(configName string) (*config, error) {
	if configName == "" {
		configName = ConfigName
	}
	cfg, err := getConfig(configName)
	if err != nil {
		return nil, err
	}
	cfg.cIncludeDirs = CIncludeDirs
	return cfg, nil
}

func getConfig(configName string) (*config, error) {
	switch configName {
	case "haiku.r1":
		return getHaikuR1Config(), nil
	case "haiku.legacy":
		return getHaikuLegacyConfig(), nil
	default:
		return nil, newUserErrorf("unknown config name: %s", configName)
	}
}

// The Haiku debugger reads DWARF up to version 3. The runtime loader does
// not handle DT_RUNPATH yet.
func getHaikuR1Config() *config {
	return &config{
		triple:                 "x86_64-unknown-haiku",
		systemRoot:             "/boot/system",
		resourceDir:            "/boot/system/lib/clang/18",
		defaultLinker:          "ld.lld",
		cxxStdlib:              libstdcxxType,
		dwarfVersion:           3,
		newDtags:               false,
		picDefault:             true,
		pieDefault:             false,
		unwindTablesDefault:    true,
		standaloneDebugDefault: true,
		mathErrnoDefault:       false,
		objcNonFragileABI:      true,
		nativeLLVMSupport:      true,
		libraryDirs: []string{
			"non-packaged/develop/lib",
			"develop/lib",
		},
		programDirs: []string{
			"non-packaged/bin",
			"bin",
		},
	}
}

func getHaikuLegacyConfig() *config {
	cfg := getHaikuR1Config()
	cfg.dwarfVersion = 2
	cfg.newDtags = true
	return cfg
}

func (cfg *config) defaultDwarfVersion() uint8 {
	return cfg.dwarfVersion
}

func (cfg *config) isPICDefault() bool {
	return cfg.picDefault
}

func (cfg *config) isPIEDefault() bool {
	return cfg.pieDefault
}

func (cfg *config) isUnwindTablesDefault() bool {
	return cfg.unwindTablesDefault
}

func (cfg *config) defaultStandaloneDebug() bool {
	return cfg.standaloneDebugDefault
}

func (cfg *config) isMathErrnoDefault() bool {
	return cfg.mathErrnoDefault
}

func (cfg *config) isObjCNonFragileABIDefault() bool {
	return cfg.objcNonFragileABI
}

func (cfg *config) hasNativeLLVMSupport() bool {
	return cfg.nativeLLVMSupport
}

func (cfg *config) defaultCXXStdlib() cxxStdlibType {
	return cfg.cxxStdlib
}

func (cfg *config) dtagsFlag() string {
	if cfg.newDtags {
		return "--enable-new-dtags"
	}
	return "--disable-new-dtags"
}

func (cfg *config) String() string {
	return fmt.Sprintf("%s (dwarf %d, %s)", cfg.triple, cfg.dwarfVersion, cfg.dtagsFlag())
}
