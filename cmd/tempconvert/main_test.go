package main_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

var binName = "tempconvert"

func TestMain(m *testing.M) {
	fmt.Println("Building tool...")
	if runtime.GOOS == "windows" {
		binName += ".exe"
	}
	build := exec.Command("go", "build", "-o", binName)
	if err := build.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Cannot build tool %s: %s", binName, err)
		os.Exit(1)
	}

	fmt.Println("Running tests...")
	result := m.Run()

	fmt.Println("Cleaning up...")
	os.Remove(binName)
	os.Exit(result)
}

func runTool(t *testing.T, stdin string, env ...string) (string, string, int) {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	cmd := exec.Command(filepath.Join(dir, binName))
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Env = append(os.Environ(), "APP_ENV=", "LOG_LEVEL=", "INVALID_INPUT=")
	cmd.Env = append(cmd.Env, env...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return string(out), stderr.String(), exitErr.ExitCode()
	}
	if err != nil {
		t.Fatal(err)
	}
	return string(out), stderr.String(), 0
}

func TestTempConvertCLI(t *testing.T) {
	prompt := "Input a temp to convert to Celsius\n"

	t.Run("Convert", func(t *testing.T) {
		out, _, code := runTool(t, "98\n")
		expected := prompt + "98 -> 36\n"
		if code != 0 {
			t.Fatalf("Expected exit code 0, got %d", code)
		}
		if expected != out {
			t.Errorf("Expected %q, got %q instead\n", expected, out)
		}
	})
	t.Run("ConvertWithSpaces", func(t *testing.T) {
		out, _, _ := runTool(t, "  100  \n")
		expected := prompt + "100 -> 37\n"
		if expected != out {
			t.Errorf("Expected %q, got %q instead\n", expected, out)
		}
	})
	t.Run("InvalidInputUsesSentinel", func(t *testing.T) {
		out, _, code := runTool(t, "abc\n", "LOG_LEVEL=debug")
		expected := prompt + "-1 -> -18\n"
		if code != 0 {
			t.Fatalf("Expected exit code 0, got %d", code)
		}
		if expected != out {
			t.Errorf("Expected %q, got %q instead\n", expected, out)
		}
	})
	t.Run("OnlyFirstLine", func(t *testing.T) {
		out, _, _ := runTool(t, "32\n212\n")
		expected := prompt + "32 -> 0\n"
		if expected != out {
			t.Errorf("Expected %q, got %q instead\n", expected, out)
		}
	})
	t.Run("InvalidInputFailPolicy", func(t *testing.T) {
		out, _, code := runTool(t, "abc\n", "INVALID_INPUT=fail")
		if code != 2 {
			t.Fatalf("Expected exit code 2, got %d", code)
		}
		if prompt != out {
			t.Errorf("Expected %q, got %q instead\n", prompt, out)
		}
	})
	t.Run("BadConfig", func(t *testing.T) {
		out, logs, code := runTool(t, "32\n", "APP_ENV=staging")
		if code != 1 {
			t.Fatalf("Expected exit code 1, got %d", code)
		}
		if out != "" {
			t.Errorf("Expected no output, got %q instead\n", out)
		}
		if !strings.Contains(logs, "ERR") || !strings.Contains(logs, "invalid APP_ENV") {
			t.Errorf("Expected a logged config error, got %q instead\n", logs)
		}
	})
	t.Run("InvalidUTF8", func(t *testing.T) {
		out, logs, code := runTool(t, "\xff\xfe\n")
		if code != 1 {
			t.Fatalf("Expected exit code 1, got %d", code)
		}
		if prompt != out {
			t.Errorf("Expected %q, got %q instead\n", prompt, out)
		}
		if !strings.Contains(logs, "valid UTF-8") {
			t.Errorf("Expected the read failure in the log, got %q instead\n", logs)
		}
	})
	t.Run("SuccessIsLogged", func(t *testing.T) {
		_, logs, _ := runTool(t, "212\n")
		if !strings.Contains(logs, "converted 212 -> 100") {
			t.Errorf("Expected the conversion in the log, got %q instead\n", logs)
		}
	})
}
