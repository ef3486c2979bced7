package main

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
)

type gccInstallation struct {
	version     string
	installPath string
	binPath     string
}

// detectGCCInstallation looks for the newest GCC under
// <systemRoot>/develop/tools/lib/gcc/<triple>/<version>.
func detectGCCInstallation(env env, systemRoot string, triple string) gccInstallation {
	toolsRoot := filepath.Join(systemRoot, "develop/tools")
	libRoot := filepath.Join(toolsRoot, "lib/gcc", triple)
	if !filepath.IsAbs(libRoot) {
		libRoot = filepath.Join(env.getwd(), libRoot)
	}
	entries, err := os.ReadDir(libRoot)
	if err != nil {
		return gccInstallation{}
	}
	best := ""
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		version := "v" + entry.Name()
		if !semver.IsValid(version) {
			continue
		}
		if best == "" || semver.Compare(version, best) > 0 {
			best = version
		}
	}
	if best == "" {
		return gccInstallation{}
	}
	version := strings.TrimPrefix(best, "v")
	return gccInstallation{
		version:     version,
		installPath: filepath.Join(libRoot, version),
		binPath:     filepath.Join(toolsRoot, triple, "bin"),
	}
}
