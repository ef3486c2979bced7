package main

import (
	"os/exec"
	"path/filepath"
)

type command struct {
	Path string   `msgpack:"path"`
	Args []string `msgpack:"args"`
	// Bookkeeping for the emitter; not passed to the process.
	Inputs []string `msgpack:"inputs,omitempty"`
	Output string   `msgpack:"output,omitempty"`
}

func newExecCmd(env env, cmd *command) *exec.Cmd {
	execCmd := exec.Command(cmd.Path, cmd.Args...)
	execCmd.Dir = env.getwd()
	return execCmd
}

func getAbsCmdPath(env env, cmd *command) string {
	path := cmd.Path
	if !filepath.IsAbs(path) && filepath.Base(path) != path {
		path = filepath.Join(env.getwd(), path)
	}
	return path
}

// commandBuilder accumulates the argv of one tool invocation. Arguments
// can only be appended; the linker resolves symbols left to right, so the
// order of appends is the order on the command line.
type commandBuilder struct {
	path string
	args []string
}

func newCommandBuilder(path string) *commandBuilder {
	return &commandBuilder{path: path}
}

func (builder *commandBuilder) addArgs(args ...string) {
	builder.args = append(builder.args, args...)
}

func (builder *commandBuilder) build() *command {
	cmdArgs := make([]string, len(builder.args))
	copy(cmdArgs, builder.args)
	return &command{
		Path: builder.path,
		Args: cmdArgs,
	}
}
