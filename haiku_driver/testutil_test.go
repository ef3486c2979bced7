package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"
	"testing"
)

const mainO = "main.o"
const testResourceDir = "/usr/lib/clang/18"

type testContext struct {
	t            *testing.T
	tempDir      string
	env          []string
	cfg          *config
	lastCmd      *command
	cmdCount     int
	stdoutBuffer bytes.Buffer
	stderrBuffer bytes.Buffer
}

func withTestContext(t *testing.T, work func(ctx *testContext)) {
	t.Parallel()
	tempDir := t.TempDir()

	cfg := getHaikuR1Config()
	cfg.systemRoot = filepath.Join(tempDir, "boot/system")
	cfg.resourceDir = testResourceDir
	ctx := testContext{
		t:       t,
		tempDir: tempDir,
		env:     nil,
		cfg:     cfg,
	}
	work(&ctx)
}

var _ env = (*testContext)(nil)

func (ctx *testContext) getenv(key string) (string, bool) {
	for i := len(ctx.env) - 1; i >= 0; i-- {
		entry := ctx.env[i]
		if strings.HasPrefix(entry, key+"=") {
			return entry[len(key)+1:], true
		}
	}
	return "", false
}

func (ctx *testContext) getwd() string {
	return ctx.tempDir
}

func (ctx *testContext) stdout() io.Writer {
	return &ctx.stdoutBuffer
}

func (ctx *testContext) stdoutString() string {
	return ctx.stdoutBuffer.String()
}

func (ctx *testContext) stderr() io.Writer {
	return &ctx.stderrBuffer
}

func (ctx *testContext) stderrString() string {
	return ctx.stderrBuffer.String()
}

func (ctx *testContext) exec(cmd *command) error {
	ctx.cmdCount++
	ctx.lastCmd = cmd
	return nil
}

func (ctx *testContext) must(exitCode int) *command {
	if exitCode != 0 {
		ctx.t.Fatalf("expected no error, but got exit code %d. Stderr: %s",
			exitCode, ctx.stderrString())
	}
	return ctx.lastCmd
}

func (ctx *testContext) newCommand(args ...string) *command {
	return &command{
		Path: "haiku_driver",
		Args: args,
	}
}

// calcLink computes the link command for args without running it.
func (ctx *testContext) calcLink(args ...string) *command {
	opts, err := parseOptions(args)
	if err != nil {
		ctx.t.Fatalf("failed to parse %q: %s", args, err)
	}
	cmd, err := calcLinkCommandFromOptions(ctx, ctx.cfg, opts)
	if err != nil {
		ctx.t.Fatalf("expected no error for %q, but got %s", args, err)
	}
	return cmd
}

func (ctx *testContext) newToolChain(args ...string) (*toolChain, *optionSet) {
	opts, err := parseOptions(args)
	if err != nil {
		ctx.t.Fatalf("failed to parse %q: %s", args, err)
	}
	return newToolChain(ctx, ctx.cfg, opts), opts
}

func (ctx *testContext) writeFile(fullFileName string, fileContent string) {
	if !filepath.IsAbs(fullFileName) {
		fullFileName = filepath.Join(ctx.tempDir, fullFileName)
	}
	if err := os.MkdirAll(filepath.Dir(fullFileName), 0777); err != nil {
		ctx.t.Fatal(err)
	}
	if err := os.WriteFile(fullFileName, []byte(fileContent), 0777); err != nil {
		ctx.t.Fatal(err)
	}
}

func (ctx *testContext) mkdir(dir string) string {
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(ctx.tempDir, dir)
	}
	if err := os.MkdirAll(dir, 0777); err != nil {
		ctx.t.Fatal(err)
	}
	return dir
}

func (ctx *testContext) systemPath(rel string) string {
	return filepath.Join(ctx.cfg.systemRoot, rel)
}

func verifyPath(cmd *command, expectedRegex string) error {
	compiledRegex := regexp.MustCompile(matchFullString(expectedRegex))
	if !compiledRegex.MatchString(cmd.Path) {
		return fmt.Errorf("path does not match %s. Actual %s", expectedRegex, cmd.Path)
	}
	return nil
}

func verifyArgs(cmd *command, expected ...string) error {
	if !reflect.DeepEqual(cmd.Args, expected) {
		return fmt.Errorf("args are different.\nExpected: %q\nActual:   %q", expected, cmd.Args)
	}
	return nil
}

func verifyArgCount(cmd *command, expectedCount int, expectedRegex string) error {
	compiledRegex := regexp.MustCompile(matchFullString(expectedRegex))
	count := 0
	for _, arg := range cmd.Args {
		if compiledRegex.MatchString(arg) {
			count++
		}
	}
	if count != expectedCount {
		return fmt.Errorf("expected %d matches for arg %s. All args: %s",
			expectedCount, expectedRegex, cmd.Args)
	}
	return nil
}

func verifyArgOrder(cmd *command, expectedRegexes ...string) error {
	compiledRegexes := []*regexp.Regexp{}
	for _, regex := range expectedRegexes {
		compiledRegexes = append(compiledRegexes, regexp.MustCompile(matchFullString(regex)))
	}
	expectedArgIndex := 0
	for _, arg := range cmd.Args {
		if expectedArgIndex == len(compiledRegexes) {
			break
		} else if compiledRegexes[expectedArgIndex].MatchString(arg) {
			expectedArgIndex++
		}
	}
	if expectedArgIndex != len(expectedRegexes) {
		return fmt.Errorf("expected args %s in order. All args: %s",
			expectedRegexes, cmd.Args)
	}
	return nil
}

func matchFullString(regex string) string {
	return "^" + regex + "$"
}
