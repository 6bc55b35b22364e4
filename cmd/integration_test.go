package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCmd is a helper to execute the root command with args.
func runCmd(t *testing.T, args ...string) {
	t.Helper()
	// Reset sticky flag state that may persist across invocations
	buildOut, listTag, showFormat = "", "", "term"
	newAuthor, newTags = "", nil
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
}

func writeArticle(t *testing.T, dir, name, header, body string) {
	t.Helper()
	data := "---\n" + header + "---\n\n" + body
	if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestCLI_List_Show_Build(t *testing.T) {
	// Use a temp HOME to isolate config
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	defer os.Setenv("HOME", oldHome)
	os.Setenv("HOME", home)

	content := filepath.Join(home, "content")
	if err := os.MkdirAll(content, 0o755); err != nil {
		t.Fatal(err)
	}
	writeArticle(t, content, "doubles.md",
		"id: test-doubles\ntitle: The Danger Of Test Doubles\nauthor: Avdi Grimm\ndate: 2022-04-07\n",
		"Doubles drift from the real collaborator.\n")
	writeArticle(t, content, "hooks.md",
		"id: hook-messages\ntitle: Decoupling Subclasses With Hook Messages\nauthor: Avdi Grimm\ndate: 2022-04-12\n",
		"Hooks invert the dependency direction.\n")

	runCmd(t, "--content", content, "list")
	runCmd(t, "--content", content, "show", "test-doubles", "-f", "text")

	out := filepath.Join(home, "public")
	runCmd(t, "--content", content, "build", "-o", out)

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	hooks := strings.Index(string(index), "hook-messages")
	doubles := strings.Index(string(index), "test-doubles")
	if hooks < 0 || doubles < 0 || hooks > doubles {
		t.Fatalf("index order wrong:\n%s", index)
	}
	for _, page := range []string{"test-doubles.html", "hook-messages.html"} {
		if _, err := os.Stat(filepath.Join(out, "articles", page)); err != nil {
			t.Fatalf("missing article page %s: %v", page, err)
		}
	}
}

func TestCLI_NewScaffoldsLoadableArticle(t *testing.T) {
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	defer os.Setenv("HOME", oldHome)
	os.Setenv("HOME", home)

	content := filepath.Join(home, "content")
	runCmd(t, "--content", content, "new", "Composed Notes", "-a", "Avdi Grimm", "-t", "oop")

	path := filepath.Join(content, "composed-notes.md")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("scaffold missing: %v", err)
	}
	if !strings.HasPrefix(string(data), "---\n") {
		t.Fatalf("scaffold lacks header:\n%s", data)
	}

	// The scaffold must load cleanly and show up in a build.
	out := filepath.Join(home, "public")
	runCmd(t, "--content", content, "build", "-o", out)
	if _, err := os.Stat(filepath.Join(out, "index.html")); err != nil {
		t.Fatalf("build after new: %v", err)
	}

	// Refuses to overwrite
	rootCmd.SetArgs([]string{"--content", content, "new", "Composed Notes", "-a", "Avdi Grimm"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected error for existing article")
	}
}
