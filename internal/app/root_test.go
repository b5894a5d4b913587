package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootCommand(t *testing.T) {
	if RootCmd.Use != "alauncher" {
		t.Errorf("expected Use to be 'alauncher', got '%s'", RootCmd.Use)
	}

	if RootCmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if RootCmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	commands := RootCmd.Commands()

	expectedCommands := []string{
		"list",
		"search <query>",
		"record <item-id>",
		"deprioritize <item-id>",
		"undeprioritize <item-id>",
		"delete <item-id>",
		"undelete <item-id>",
		"ignore <item-id>",
		"unignore <item-id>",
		"rename <item-id> <label>",
		"unrename <item-id>",
		"stats <item-id>",
		"watch",
	}
	foundCommands := make(map[string]bool)

	for _, cmd := range commands {
		foundCommands[cmd.Use] = true
	}

	for _, expected := range expectedCommands {
		if !foundCommands[expected] {
			t.Errorf("expected command '%s' to be registered", expected)
		}
	}
}

func TestRootCommandHasPersistentFlags(t *testing.T) {
	for _, name := range []string{"db", "config"} {
		flag := RootCmd.PersistentFlags().Lookup(name)
		if flag == nil {
			t.Errorf("expected --%s flag to be registered", name)
			continue
		}
		if flag.Usage == "" {
			t.Errorf("expected --%s flag to have usage text", name)
		}
	}
}

// runCommand executes the root command with args inside an isolated home
// and returns its combined output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetErr(&buf)
	RootCmd.SetArgs(args)
	defer RootCmd.SetArgs(nil)

	err := RootCmd.Execute()
	return buf.String(), err
}

// isolate points config, data, and apps directories at temp dirs.
func isolate(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("NO_COLOR", "1")

	flagDB = filepath.Join(home, "a.db")
	flagConfig = ""
	t.Cleanup(func() { flagDB = ""; flagConfig = "" })

	return home
}

func TestRecordThenStats(t *testing.T) {
	isolate(t)

	if _, err := runCommand(t, "record", "org.mozilla.firefox/Main"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := runCommand(t, "record", "org.mozilla.firefox/Main"); err != nil {
		t.Fatalf("record: %v", err)
	}

	// stats prints via fmt to stdout; capture it.
	out := captureStdout(t, func() {
		if _, err := runCommand(t, "stats", "org.mozilla.firefox/Main"); err != nil {
			t.Fatalf("stats: %v", err)
		}
	})

	if !strings.Contains(out, "2 launches") {
		t.Errorf("stats output missing launch count:\n%s", out)
	}
}

func TestDeprioritizePurgesHistory(t *testing.T) {
	isolate(t)

	if _, err := runCommand(t, "record", "a/Main"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := runCommand(t, "deprioritize", "a/Main"); err != nil {
		t.Fatalf("deprioritize: %v", err)
	}

	out := captureStdout(t, func() {
		if _, err := runCommand(t, "stats", "a/Main"); err != nil {
			t.Fatalf("stats: %v", err)
		}
	})

	if !strings.Contains(out, "deprioritized") {
		t.Errorf("stats output missing deprioritized status:\n%s", out)
	}
	if !strings.Contains(out, "0 launches") {
		t.Errorf("history should be purged:\n%s", out)
	}
}

func TestListShowsRankedItems(t *testing.T) {
	home := isolate(t)

	appsDir := filepath.Join(home, ".alauncher", "apps")
	if err := os.MkdirAll(appsDir, 0o755); err != nil {
		t.Fatal(err)
	}
	entry := "label = \"Firefox\"\npackage = \"org.mozilla.firefox\"\nactivity = \"Main\"\n"
	if err := os.WriteFile(filepath.Join(appsDir, "firefox.toml"), []byte(entry), 0o644); err != nil {
		t.Fatal(err)
	}

	out := captureStdout(t, func() {
		if _, err := runCommand(t, "list"); err != nil {
			t.Fatalf("list: %v", err)
		}
	})

	for _, want := range []string{"Firefox", "Settings"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestSearchFiltersAccentInsensitively(t *testing.T) {
	home := isolate(t)

	appsDir := filepath.Join(home, ".alauncher", "apps")
	if err := os.MkdirAll(appsDir, 0o755); err != nil {
		t.Fatal(err)
	}
	entry := "label = \"Café Finder\"\npackage = \"com.example.cafe\"\nactivity = \"Main\"\n"
	if err := os.WriteFile(filepath.Join(appsDir, "cafe.toml"), []byte(entry), 0o644); err != nil {
		t.Fatal(err)
	}

	out := captureStdout(t, func() {
		if _, err := runCommand(t, "search", "cafe"); err != nil {
			t.Fatalf("search: %v", err)
		}
	})

	if !strings.Contains(out, "Café Finder") {
		t.Errorf("search output missing match:\n%s", out)
	}
	if strings.Contains(out, "Settings") {
		t.Errorf("non-matching items must be filtered:\n%s", out)
	}
}

// captureStdout redirects os.Stdout around fn.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	old := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	w.Close()
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}
