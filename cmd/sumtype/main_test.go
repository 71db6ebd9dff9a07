package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funvibe/sumtype/internal/config"
	"github.com/funvibe/sumtype/internal/samples"
)

func runCmd(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := runCmd(t)
	if code != config.ExitUsage || !strings.Contains(stderr, "Usage: sumtype") {
		t.Errorf("no args: code=%d stderr=%q", code, stderr)
	}
	code, _, stderr = runCmd(t, "frobnicate")
	if code != config.ExitUsage || !strings.Contains(stderr, `unknown command "frobnicate"`) {
		t.Errorf("unknown command: code=%d stderr=%q", code, stderr)
	}
}

func TestRun_Version(t *testing.T) {
	code, stdout, _ := runCmd(t, "version")
	if code != config.ExitOK || stdout != "sumtype "+config.Version+"\n" {
		t.Errorf("version: code=%d stdout=%q", code, stdout)
	}
}

func TestRun_Describe(t *testing.T) {
	code, stdout, _ := runCmd(t, "describe", "Message")
	if code != config.ExitOK {
		t.Fatalf("describe: code=%d", code)
	}
	want := "enum Message { Quit, Move { x: I32, y: I32 }, Write(String), ChangeColor(I32, I32, I32) }\n" +
		"  fingerprint: " + samples.Message.Fingerprint().String() + "\n"
	if stdout != want {
		t.Errorf("describe Message:\n got %q\nwant %q", stdout, want)
	}

	code, stdout, _ = runCmd(t, "describe", "-dump", "IpAddrKind")
	if code != config.ExitOK || !strings.Contains(stdout, "Name: \"V4\"") {
		t.Errorf("describe -dump: code=%d stdout=%q", code, stdout)
	}

	code, stdout, _ = runCmd(t, "describe", "-dump", "Coin")
	if code != config.ExitOK {
		t.Fatalf("describe -dump Coin: code=%d", code)
	}
	for _, want := range []string{`Tag: "Penny"`, `Text: "Quarter(Alaska)"`, `Tag: "Alaska"`} {
		if !strings.Contains(stdout, want) {
			t.Errorf("describe -dump Coin: missing %s in\n%s", want, stdout)
		}
	}

	if code, _, _ := runCmd(t, "describe", "Nope"); code != config.ExitUsage {
		t.Errorf("unknown enumeration: code=%d", code)
	}
}

func TestRun_SelfCheck(t *testing.T) {
	code, stdout, stderr := runCmd(t, "selfcheck", "-v")
	if code != config.ExitOK || stdout != "selfcheck ok\n" {
		t.Fatalf("selfcheck: code=%d stdout=%q stderr=%q", code, stdout, stderr)
	}
	if !strings.Contains(stderr, "ok Absent fails to unwrap") {
		t.Errorf("verbose output missing steps: %q", stderr)
	}
}

func TestRun_Check(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages through the go command")
	}
	code, stdout, _ := runCmd(t, "check", "-config", "testdata/check/sumtype.yaml")
	if code != config.ExitFindings {
		t.Fatalf("check: code=%d stdout=%q", code, stdout)
	}
	for _, want := range []string{"bad.go:12:", ": L001: non-exhaustive type switch on bad.Event: missing Closed\n"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("check text output %q does not contain %q", stdout, want)
		}
	}
	if strings.Contains(stdout, "\x1b[") {
		t.Errorf("color: never still colored %q", stdout)
	}
}

func TestRun_CheckFormatJSON(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages through the go command")
	}
	code, stdout, _ := runCmd(t, "check", "-config", "testdata/check/sumtype.yaml", "-format", "json")
	if code != config.ExitFindings {
		t.Fatalf("check: code=%d stdout=%q", code, stdout)
	}

	var found []jsonFinding
	if err := json.Unmarshal([]byte(stdout), &found); err != nil {
		t.Fatalf("decoding %q: %v", stdout, err)
	}
	if len(found) != 1 {
		t.Fatalf("got %d findings: %+v", len(found), found)
	}
	f := found[0]
	if f.Code != "L001" || f.Line != 12 || f.Message != "non-exhaustive type switch on bad.Event: missing Closed" {
		t.Errorf("finding = %+v", f)
	}
	if filepath.Base(f.File) != "bad.go" {
		t.Errorf("file = %q", f.File)
	}
}

func TestRun_CheckRejectsUnknownFormat(t *testing.T) {
	code, _, stderr := runCmd(t, "check", "-format", "xml")
	if code != config.ExitUsage || !strings.Contains(stderr, `invalid value "xml" for flag -format`) {
		t.Errorf("check -format xml: code=%d stderr=%q", code, stderr)
	}
}
