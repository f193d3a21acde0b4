package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const header = "firstname,lastname,division,points,date,summary\n"

func TestRun_Scenarios(t *testing.T) {
	dir := t.TempDir()
	valid := writeFile(t, dir, "valid.csv", header+`John,Doe,2,10,2024-11-09,Task A
Jane,Smith,1,20,2024-11-10,Task B
Alice,Brown,3,30,2024-11-11,Task C
`)
	badDivision := writeFile(t, dir, "bad.csv", header+"John,Doe,two,10,2024-11-09,Task A\n")
	empty := writeFile(t, dir, "empty.csv", header)
	missing := filepath.Join(dir, "non_existent_file.csv")

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string // exact; checked only when wantCode == 0
		wantStderr string // substring
	}{
		{
			name:     "A: success",
			args:     []string{valid},
			wantCode: 0,
			wantStdout: `records:
- name: Alice Brown
  details: In division 3 from 2024-11-11 performing Task C
- name: John Doe
  details: In division 2 from 2024-11-09 performing Task A
- name: Jane Smith
  details: In division 1 from 2024-11-10 performing Task B
`,
		},
		{
			name:       "B: missing file",
			args:       []string{missing},
			wantCode:   1,
			wantStderr: "file not found: " + missing,
		},
		{
			name:       "C: non-numeric division",
			args:       []string{badDivision},
			wantCode:   1,
			wantStderr: "type coercion failure",
		},
		{
			name:       "D: header only",
			args:       []string{empty},
			wantCode:   1,
			wantStderr: "no valid records found",
		},
		{
			name:       "E: two arguments",
			args:       []string{valid, valid},
			wantCode:   1,
			wantStderr: "Usage:",
		},
		{
			name:       "no arguments",
			args:       nil,
			wantCode:   1,
			wantStderr: "Usage:",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tc.args, &stdout, &stderr)

			if code != tc.wantCode {
				t.Fatalf("exit code = %d, want %d (stderr: %s)", code, tc.wantCode, stderr.String())
			}
			if tc.wantCode == 0 && stdout.String() != tc.wantStdout {
				t.Errorf("stdout mismatch\ngot:\n%s\nwant:\n%s", stdout.String(), tc.wantStdout)
			}
			if tc.wantCode != 0 && stdout.Len() != 0 {
				t.Errorf("stdout should be empty on failure, got:\n%s", stdout.String())
			}
			if !strings.Contains(stderr.String(), tc.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tc.wantStderr)
			}
		})
	}
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "scores.csv",
		"firstname;lastname;division;points;date;summary\nJohn;Doe;2;10;2024-11-09;Task A\nJane;Smith;1;20;2024-11-10;Task B\n")
	cfgPath := writeFile(t, dir, "topthree.yaml", "input:\n  delimiter: \";\"\nreport:\n  limit: 1\n")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-config", cfgPath, input}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, stderr.String())
	}
	want := "records:\n- name: John Doe\n  details: In division 2 from 2024-11-09 performing Task A\n"
	if stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
}

func TestRun_BadConfig(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "scores.csv", header+"John,Doe,2,10,2024-11-09,Task A\n")
	cfgPath := writeFile(t, dir, "topthree.yaml", "log:\n  level: loud\n")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-config", cfgPath, input}, &stdout, &stderr); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "log.level") {
		t.Errorf("stderr = %q, want it to mention log.level", stderr.String())
	}
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-version"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.HasPrefix(stdout.String(), "topthree ") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-h"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stderr.String(), "Usage:") {
		t.Errorf("stderr = %q, want usage", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout should be empty, got %q", stdout.String())
	}
}

func TestDescribe_Uncategorised(t *testing.T) {
	got := describe(errors.New("open scores.csv: permission denied"))
	if got != "an error occurred: open scores.csv: permission denied" {
		t.Errorf("describe() = %q", got)
	}
}

// writeFile creates name under dir with content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
