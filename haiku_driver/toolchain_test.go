package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestParseTarget(t *testing.T) {
	var tests = []struct {
		triple string
		arch   string
		sys    string
		mips   bool
	}{
		{"x86_64-unknown-haiku", "x86_64", "haiku", false},
		{"mipsel-unknown-haiku", "mipsel", "haiku", true},
		{"riscv64-unknown-haiku", "riscv64", "haiku", false},
		{"arm", "arm", "unknown", false},
	}
	for _, tt := range tests {
		target := parseTarget(tt.triple)
		if target.target != tt.triple || target.arch != tt.arch || target.sys != tt.sys {
			t.Errorf("%s: unexpected target %+v", tt.triple, target)
		}
		if target.isMIPS() != tt.mips {
			t.Errorf("%s: expected isMIPS %t", tt.triple, tt.mips)
		}
	}
}

func TestDetectGCCInstallationPicksNewestVersion(t *testing.T) {
	withTestContext(t, func(ctx *testContext) {
		libRoot := ctx.systemPath("develop/tools/lib/gcc/x86_64-unknown-haiku")
		for _, version := range []string{"9.3.0", "11.2.0", "11.10.1", "not-a-version"} {
			ctx.mkdir(filepath.Join(libRoot, version))
		}
		ctx.writeFile(filepath.Join(libRoot, "12.0.0"), "not a directory")

		gcc := detectGCCInstallation(ctx, ctx.cfg.systemRoot, "x86_64-unknown-haiku")
		if gcc.version != "11.10.1" {
			t.Errorf("expected 11.10.1. Got: %s", gcc.version)
		}
		if gcc.installPath != filepath.Join(libRoot, "11.10.1") {
			t.Errorf("unexpected install path: %s", gcc.installPath)
		}
		if gcc.binPath != ctx.systemPath("develop/tools/x86_64-unknown-haiku/bin") {
			t.Errorf("unexpected bin path: %s", gcc.binPath)
		}
	})
}

func TestDetectGCCInstallationMissing(t *testing.T) {
	withTestContext(t, func(ctx *testContext) {
		gcc := detectGCCInstallation(ctx, ctx.cfg.systemRoot, "x86_64-unknown-haiku")
		if gcc != (gccInstallation{}) {
			t.Errorf("expected no installation. Got: %+v", gcc)
		}
	})
}

func TestRelativeSystemRootUsesWorkingDir(t *testing.T) {
	withTestContext(t, func(ctx *testContext) {
		ctx.cfg.systemRoot = "sys"
		lib := ctx.mkdir("sys/develop/lib")
		tc, _ := ctx.newToolChain()
		if len(tc.filePaths) != 1 || filepath.Join(ctx.tempDir, tc.filePaths[0]) != lib {
			t.Errorf("expected %s in file paths. Got: %q", lib, tc.filePaths)
		}
	})
}

func TestLinkerPath(t *testing.T) {
	withTestContext(t, func(ctx *testContext) {
		var tests = []struct {
			args     []string
			expected string
		}{
			{nil, "ld.lld"},
			{[]string{"-fuse-ld=bfd"}, "ld.bfd"},
			{[]string{"-fuse-ld=lld"}, "ld.lld"},
			{[]string{"-fuse-ld=ld"}, "ld"},
			{[]string{"-fuse-ld=/opt/bin/ld.mold"}, "/opt/bin/ld.mold"},
		}
		for _, tt := range tests {
			tc, opts := ctx.newToolChain(tt.args...)
			if path := tc.getLinkerPath(opts); path != tt.expected {
				t.Errorf("%q: expected %s. Got: %s", tt.args, tt.expected, path)
			}
		}
	})
}

func TestLinkerPathSearchOrder(t *testing.T) {
	withTestContext(t, func(ctx *testContext) {
		pathDir := ctx.mkdir("path")
		ctx.writeFile(filepath.Join(pathDir, "ld.lld"), "")
		ctx.env = []string{"PATH=" + pathDir}
		tc, opts := ctx.newToolChain()
		if path := tc.getLinkerPath(opts); path != filepath.Join(pathDir, "ld.lld") {
			t.Errorf("expected linker from PATH. Got: %s", path)
		}

		systemLinker := ctx.systemPath("bin/ld.lld")
		ctx.writeFile(systemLinker, "")
		tc, opts = ctx.newToolChain()
		if path := tc.getLinkerPath(opts); path != systemLinker {
			t.Errorf("expected linker from the system bin dir. Got: %s", path)
		}

		prefix := ctx.mkdir("prefix") + "/"
		ctx.writeFile(prefix+"ld.lld", "")
		tc, opts = ctx.newToolChain("-B" + prefix)
		if path := tc.getLinkerPath(opts); path != prefix+"ld.lld" {
			t.Errorf("expected linker from -B prefix. Got: %s", path)
		}
	})
}

func TestLinkerPathWithPrefix(t *testing.T) {
	withTestContext(t, func(ctx *testContext) {
		binDir := ctx.mkdir("cross/bin")
		ctx.writeFile(filepath.Join(binDir, "ld.lld"), "")
		ctx.writeFile(filepath.Join(binDir, "x86_64-ld.bfd"), "")

		tc, opts := ctx.newToolChain("-B", binDir)
		if path := tc.getLinkerPath(opts); path != filepath.Join(binDir, "ld.lld") {
			t.Errorf("expected linker inside the -B dir. Got: %s", path)
		}

		tc, opts = ctx.newToolChain("-B", filepath.Join(binDir, "x86_64-"), "-fuse-ld=bfd")
		if path := tc.getLinkerPath(opts); path != filepath.Join(binDir, "x86_64-ld.bfd") {
			t.Errorf("expected linker with the -B prefix prepended. Got: %s", path)
		}
	})
}

func TestLinkerPathFromGCCInstallation(t *testing.T) {
	withTestContext(t, func(ctx *testContext) {
		ctx.mkdir(ctx.systemPath("develop/tools/lib/gcc/x86_64-unknown-haiku/11.2.0"))
		linker := ctx.systemPath("develop/tools/x86_64-unknown-haiku/bin/ld.bfd")
		ctx.writeFile(linker, "")
		cmd := ctx.calcLink("-fuse-ld=bfd", mainO)
		if err := verifyPath(cmd, linker); err != nil {
			t.Error(err)
		}
	})
}

func TestGetFilePathFallsBackToName(t *testing.T) {
	withTestContext(t, func(ctx *testContext) {
		nonPackaged := ctx.mkdir(ctx.systemPath("non-packaged/develop/lib"))
		packaged := ctx.mkdir(ctx.systemPath("develop/lib"))
		ctx.writeFile(filepath.Join(packaged, "crtn.o"), "")
		ctx.writeFile(filepath.Join(packaged, "crtend.o"), "")
		ctx.writeFile(filepath.Join(nonPackaged, "crtend.o"), "")

		tc, _ := ctx.newToolChain()
		if path := tc.getFilePath("crtn.o"); path != filepath.Join(packaged, "crtn.o") {
			t.Errorf("unexpected crtn.o path: %s", path)
		}
		if path := tc.getFilePath("crtend.o"); path != filepath.Join(nonPackaged, "crtend.o") {
			t.Errorf("expected non-packaged crtend.o first. Got: %s", path)
		}
		if path := tc.getFilePath("missing.o"); path != "missing.o" {
			t.Errorf("expected bare name. Got: %s", path)
		}
	})
}

func TestCompilerRTPath(t *testing.T) {
	withTestContext(t, func(ctx *testContext) {
		tc, _ := ctx.newToolChain("--target=riscv64-unknown-haiku")
		path := tc.getCompilerRT("builtins")
		if path != testResourceDir+"/lib/haiku/libclang_rt.builtins-riscv64.a" {
			t.Errorf("unexpected runtime path: %s", path)
		}
		if !strings.HasPrefix(path, testResourceDir) {
			t.Errorf("expected runtime under the resource dir. Got: %s", path)
		}
	})
}

func TestSysrootPrecedence(t *testing.T) {
	withTestContext(t, func(ctx *testContext) {
		ctx.cfg.defaultSysroot = "/from/config"
		tc, _ := ctx.newToolChain()
		if tc.sysroot != "/from/config" {
			t.Errorf("expected config sysroot. Got: %s", tc.sysroot)
		}

		ctx.env = []string{"SYSROOT=/from/env"}
		tc, _ = ctx.newToolChain()
		if tc.sysroot != "/from/env" {
			t.Errorf("expected SYSROOT sysroot. Got: %s", tc.sysroot)
		}

		tc, _ = ctx.newToolChain("--sysroot=/from/flag")
		if tc.sysroot != "/from/flag" {
			t.Errorf("expected --sysroot sysroot. Got: %s", tc.sysroot)
		}
	})
}
