package sources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BoD/a/internal/launcher"
)

func writeEntry(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write entry %s: %v", name, err)
	}
}

func newTestDirectoryApps(t *testing.T) (*DirectoryApps, string) {
	t.Helper()
	dir := t.TempDir()
	d, err := NewDirectoryApps(dir, testLogger())
	if err != nil {
		t.Fatalf("NewDirectoryApps failed: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return d, dir
}

func TestDirectoryApps_ListLaunchable(t *testing.T) {
	d, dir := newTestDirectoryApps(t)

	writeEntry(t, dir, "mail.toml", `
label = "Mail"
package = "com.mail"
activity = "com.mail.Inbox"
icon = "icons/mail.png"
`)
	writeEntry(t, dir, "chat.toml", `
label = "Chat"
package = "com.chat"
activity = "com.chat.Main"
`)

	apps, err := d.ListLaunchable(DefaultProfile)
	if err != nil {
		t.Fatalf("ListLaunchable failed: %v", err)
	}
	if len(apps) != 2 {
		t.Fatalf("got %d apps; want 2", len(apps))
	}

	// Entries are sorted by file name: chat.toml before mail.toml.
	if apps[0].PackageName != "com.chat" || apps[1].PackageName != "com.mail" {
		t.Errorf("apps = %v; want chat then mail", apps)
	}
	if apps[0].Icon != launcher.DefaultAppIcon {
		t.Errorf("icon = %q; want default app icon for entry without icon", apps[0].Icon)
	}
	if apps[1].Icon != "icons/mail.png" {
		t.Errorf("icon = %q; want icons/mail.png", apps[1].Icon)
	}
}

func TestDirectoryApps_Profiles(t *testing.T) {
	d, dir := newTestDirectoryApps(t)

	writeEntry(t, dir, "mail.toml", `
label = "Mail"
package = "com.mail"
activity = "com.mail.Inbox"
`)
	writeEntry(t, dir, "work-mail.toml", `
label = "Mail"
package = "com.mail"
activity = "com.mail.Inbox"
profile = "work"
`)

	profiles := d.Profiles()
	if len(profiles) != 2 || profiles[0] != "main" || profiles[1] != "work" {
		t.Errorf("profiles = %v; want [main work]", profiles)
	}

	work, err := d.ListLaunchable("work")
	if err != nil {
		t.Fatalf("ListLaunchable failed: %v", err)
	}
	if len(work) != 1 {
		t.Errorf("got %d work apps; want 1", len(work))
	}
}

func TestDirectoryApps_SkipsMalformedEntries(t *testing.T) {
	d, dir := newTestDirectoryApps(t)

	writeEntry(t, dir, "broken.toml", `label = "unterminated`)
	writeEntry(t, dir, "incomplete.toml", `label = "No package"`)
	writeEntry(t, dir, "notes.txt", `not a toml entry`)
	writeEntry(t, dir, "ok.toml", `
package = "com.mail"
activity = "com.mail.Inbox"
`)

	apps, err := d.ListLaunchable(DefaultProfile)
	if err != nil {
		t.Fatalf("ListLaunchable failed: %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("got %d apps; want 1 (malformed entries skipped)", len(apps))
	}
	// Label falls back to the package name.
	if apps[0].Label != "com.mail" {
		t.Errorf("label = %q; want fallback to package name", apps[0].Label)
	}
}

func TestDirectoryApps_SignalsOnChange(t *testing.T) {
	d, dir := newTestDirectoryApps(t)

	ch := d.Changed()
	<-ch // drain the primed tick

	writeEntry(t, dir, "mail.toml", `
package = "com.mail"
activity = "com.mail.Inbox"
`)

	waitFor(t, "change signal after write", func() bool {
		select {
		case <-ch:
			return true
		default:
			return false
		}
	})
}
