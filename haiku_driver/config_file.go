package main

import (
	"io"
	"strings"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
)

// configFile is the TOML form of a config. Keys that are not present in the
// file keep the value of the named config they are applied to.
type configFile struct {
	Triple                 string   `toml:"triple"`
	SystemRoot             string   `toml:"system_root"`
	Sysroot                string   `toml:"sysroot"`
	ResourceDir            string   `toml:"resource_dir"`
	Linker                 string   `toml:"linker"`
	CXXStdlib              string   `toml:"cxx_stdlib"`
	DwarfVersion           int64    `toml:"dwarf_version"`
	NewDtags               bool     `toml:"new_dtags"`
	PICDefault             bool     `toml:"pic_default"`
	PIEDefault             bool     `toml:"pie_default"`
	UnwindTablesDefault    bool     `toml:"unwind_tables_default"`
	StandaloneDebugDefault bool     `toml:"standalone_debug_default"`
	MathErrnoDefault       bool     `toml:"math_errno_default"`
	ObjCNonFragileABI      bool     `toml:"objc_non_fragile_abi"`
	NativeLLVMSupport      bool     `toml:"native_llvm_support"`
	CIncludeDirs           string   `toml:"c_include_dirs"`
	LibraryDirs            []string `toml:"library_dirs"`
	ProgramDirs            []string `toml:"program_dirs"`
}

func loadConfigFile(path string, cfg *config) error {
	var file configFile
	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		return newUserErrorf("%s: failed to parse TOML: %s", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return newUserErrorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if meta.IsDefined("triple") {
		if strings.Count(file.Triple, "-") < 2 {
			return newUserErrorf("%s: triple %q is not of the form arch-vendor-os", path, file.Triple)
		}
		cfg.triple = file.Triple
	}
	if meta.IsDefined("system_root") {
		cfg.systemRoot = file.SystemRoot
	}
	if meta.IsDefined("sysroot") {
		cfg.defaultSysroot = file.Sysroot
	}
	if meta.IsDefined("resource_dir") {
		cfg.resourceDir = file.ResourceDir
	}
	if meta.IsDefined("linker") {
		if strings.TrimSpace(file.Linker) == "" {
			return newUserErrorf("%s: linker must not be empty", path)
		}
		cfg.defaultLinker = file.Linker
	}
	if meta.IsDefined("cxx_stdlib") {
		stdlib, ok := parseCXXStdlib(file.CXXStdlib)
		if !ok {
			return newUserErrorf("%s: invalid cxx_stdlib %q (expected libc++ or libstdc++)", path, file.CXXStdlib)
		}
		cfg.cxxStdlib = stdlib
	}
	if meta.IsDefined("dwarf_version") {
		version, err := safecast.Conv[uint8](file.DwarfVersion)
		if err != nil || version < 2 || version > 5 {
			return newUserErrorf("%s: invalid dwarf_version %d", path, file.DwarfVersion)
		}
		cfg.dwarfVersion = version
	}
	if meta.IsDefined("new_dtags") {
		cfg.newDtags = file.NewDtags
	}
	if meta.IsDefined("pic_default") {
		cfg.picDefault = file.PICDefault
	}
	if meta.IsDefined("pie_default") {
		cfg.pieDefault = file.PIEDefault
	}
	if meta.IsDefined("unwind_tables_default") {
		cfg.unwindTablesDefault = file.UnwindTablesDefault
	}
	if meta.IsDefined("standalone_debug_default") {
		cfg.standaloneDebugDefault = file.StandaloneDebugDefault
	}
	if meta.IsDefined("math_errno_default") {
		cfg.mathErrnoDefault = file.MathErrnoDefault
	}
	if meta.IsDefined("objc_non_fragile_abi") {
		cfg.objcNonFragileABI = file.ObjCNonFragileABI
	}
	if meta.IsDefined("native_llvm_support") {
		cfg.nativeLLVMSupport = file.NativeLLVMSupport
	}
	if meta.IsDefined("c_include_dirs") {
		cfg.cIncludeDirs = file.CIncludeDirs
	}
	if meta.IsDefined("library_dirs") {
		cfg.libraryDirs = file.LibraryDirs
	}
	if meta.IsDefined("program_dirs") {
		cfg.programDirs = file.ProgramDirs
	}
	return nil
}

func writeConfigFile(w io.Writer, cfg *config) error {
	file := configFile{
		Triple:                 cfg.triple,
		SystemRoot:             cfg.systemRoot,
		Sysroot:                cfg.defaultSysroot,
		ResourceDir:            cfg.resourceDir,
		Linker:                 cfg.defaultLinker,
		CXXStdlib:              cfg.defaultCXXStdlib().String(),
		DwarfVersion:           int64(cfg.defaultDwarfVersion()),
		NewDtags:               cfg.newDtags,
		PICDefault:             cfg.isPICDefault(),
		PIEDefault:             cfg.isPIEDefault(),
		UnwindTablesDefault:    cfg.isUnwindTablesDefault(),
		StandaloneDebugDefault: cfg.defaultStandaloneDebug(),
		MathErrnoDefault:       cfg.isMathErrnoDefault(),
		ObjCNonFragileABI:      cfg.isObjCNonFragileABIDefault(),
		NativeLLVMSupport:      cfg.hasNativeLLVMSupport(),
		CIncludeDirs:           cfg.cIncludeDirs,
		LibraryDirs:            cfg.libraryDirs,
		ProgramDirs:            cfg.programDirs,
	}
	return toml.NewEncoder(w).Encode(file)
}

func parseCXXStdlib(value string) (cxxStdlibType, bool) {
	switch value {
	case "libc++":
		return libcxxType, true
	case "libstdc++":
		return libstdcxxType, true
	}
	return libstdcxxType, false
}
