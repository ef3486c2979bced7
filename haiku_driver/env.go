package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/vmihailenco/msgpack/v5"
	sysenv "github.com/xyproto/env/v2"
)

type env interface {
	getenv(key string) (string, bool)
	getwd() string
	stdout() io.Writer
	stderr() io.Writer
	exec(cmd *command) error
}

type processEnv struct {
	wd string
}

func newProcessEnv() (env, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, wrapErrorwithSourceLocf(err, "failed to read working directory")
	}
	return &processEnv{wd: wd}, nil
}

var _ env = (*processEnv)(nil)

func (*processEnv) getenv(key string) (string, bool) {
	if !sysenv.Has(key) {
		return "", false
	}
	return sysenv.Str(key), true
}

func (env *processEnv) getwd() string {
	return env.wd
}

func (*processEnv) stdout() io.Writer {
	return os.Stdout
}

func (*processEnv) stderr() io.Writer {
	return os.Stderr
}

func (env *processEnv) exec(cmd *command) error {
	execCmd := newExecCmd(env, cmd)
	if execCmd.Err != nil {
		return execCmd.Err
	}
	return syscall.Exec(execCmd.Path, execCmd.Args, os.Environ())
}

type printingEnv struct {
	env
}

var _ env = (*printingEnv)(nil)

func (env *printingEnv) exec(cmd *command) error {
	printCmd(env, cmd)
	return env.env.exec(cmd)
}

// dryRunEnv prints commands instead of running them (-###).
type dryRunEnv struct {
	env
}

var _ env = (*dryRunEnv)(nil)

func (env *dryRunEnv) exec(cmd *command) error {
	printCmd(env, cmd)
	return nil
}

func printCmd(env env, cmd *command) {
	fmt.Fprintf(env.stderr(), " \"%s\"", getAbsCmdPath(env, cmd))
	for _, arg := range cmd.Args {
		fmt.Fprintf(env.stderr(), " \"%s\"", strings.ReplaceAll(arg, `"`, `\"`))
	}
	io.WriteString(env.stderr(), "\n")
}

const commandLogEnvVar = "HAIKU_DRIVER_COMMAND_LOG"

// commandLogEnv appends every command to a msgpack stream before handing it
// on. The log is written before exec as exec does not return on success.
type commandLogEnv struct {
	env
	logPath string
}

var _ env = (*commandLogEnv)(nil)

func processCommandLogEnv(e env) env {
	if logPath, ok := e.getenv(commandLogEnvVar); ok && logPath != "" {
		return &commandLogEnv{env: e, logPath: logPath}
	}
	return e
}

func (env *commandLogEnv) exec(cmd *command) error {
	if err := appendCommandLog(env.logPath, cmd); err != nil {
		return err
	}
	return env.env.exec(cmd)
}

func appendCommandLog(logPath string, cmd *command) (err error) {
	// #nosec G304 -- the log path is chosen by the user
	f, err := os.OpenFile(logPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return wrapErrorwithSourceLocf(err, "failed to open command log %s", logPath)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = wrapErrorwithSourceLocf(closeErr, "failed to close command log %s", logPath)
		}
	}()
	if err := msgpack.NewEncoder(f).Encode(cmd); err != nil {
		return wrapErrorwithSourceLocf(err, "failed to write command log %s", logPath)
	}
	return nil
}

func readCommandLog(r io.Reader) ([]*command, error) {
	var cmds []*command
	dec := msgpack.NewDecoder(r)
	for {
		cmd := &command{}
		if err := dec.Decode(cmd); err != nil {
			if errors.Is(err, io.EOF) {
				return cmds, nil
			}
			return cmds, err
		}
		cmds = append(cmds, cmd)
	}
}

func readCommandLogFile(logPath string) ([]*command, error) {
	// #nosec G304 -- the log path is chosen by the user
	data, err := os.ReadFile(logPath)
	if err != nil {
		return nil, err
	}
	return readCommandLog(bytes.NewReader(data))
}
