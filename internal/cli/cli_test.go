package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

// isolate points config, env file and the settings store at a temp home.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("MPA_HOME", t.TempDir())
	t.Setenv("MPA_CONFIG", "")
	t.Setenv("MPA_ENV_FILE", "")
	t.Setenv("MPA_STORE_DRIVER", "sqlite")
	t.Setenv("MPA_ASSISTANT_DEFAULT_USER", "")
	t.Setenv("MPA_ASSISTANT_TIMEZONE", "UTC")
	t.Setenv("MPA_EFFECTS_QR_DIR", "")
}

func resetFlags() {
	verbose = false
	askMessage, askUser, askRaw = "", "", false
	chatUser = ""
	registerReset = false
	prefsName, prefsGender, prefsLanguage = "", "", ""
	serveHost, servePort = "", 0
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	}
}

func runRootCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := runRootCommand(t, "", args...)
	if err != nil {
		t.Fatalf("mpa %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func TestVersion(t *testing.T) {
	if out := mustRun(t, "version"); !strings.Contains(out, version) {
		t.Fatalf("version output = %q", out)
	}
}

func TestRegisterGatesAsk(t *testing.T) {
	isolate(t)

	if out := mustRun(t, "register", "Asha"); !strings.Contains(out, "Registered Asha.") {
		t.Fatalf("register output = %q", out)
	}
	if out := mustRun(t, "status"); !strings.Contains(out, "✓ Asha") {
		t.Fatalf("status should show the registered user: %q", out)
	}

	out := mustRun(t, "ask", "-m", "Tell me a joke", "--user", "Ravi")
	if !strings.Contains(out, "Sorry, I am only available for Asha.") {
		t.Fatalf("stranger output = %q", out)
	}

	mustRun(t, "register", "--reset")
	if out := mustRun(t, "status"); !strings.Contains(out, "setup mode") {
		t.Fatalf("status after reset = %q", out)
	}
}

func TestRegisterArgs(t *testing.T) {
	isolate(t)
	if _, err := runRootCommand(t, "", "register"); err == nil {
		t.Fatal("expected an error without a name")
	}
	if _, err := runRootCommand(t, "", "register", "Asha", "--reset"); err == nil {
		t.Fatal("expected an error for a name with --reset")
	}
}

func TestAskWhatsApp(t *testing.T) {
	isolate(t)
	msg := `Message John at +1234567890 saying "Hey there!"`

	out := mustRun(t, "ask", "-m", msg)
	if strings.Contains(out, "[WHATSAPP_LINK") {
		t.Fatalf("action code leaked into output: %q", out)
	}
	for _, want := range []string{"WhatsApp message ready for 1234567890", "https://wa.me/1234567890?text=Hey%20there!"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if raw := mustRun(t, "ask", "--raw", "-m", msg); !strings.Contains(raw, "[WHATSAPP_LINK: 1234567890|Hey there!]") {
		t.Fatalf("raw output = %q", raw)
	}
}

func TestAskRequiresMessage(t *testing.T) {
	isolate(t)
	if _, err := runRootCommand(t, "", "ask"); err == nil {
		t.Fatal("expected an error without --message")
	}
}

func TestPrefsPersistAndFeedPrompt(t *testing.T) {
	isolate(t)

	if _, err := runRootCommand(t, "", "prefs", "--gender", "robot"); err == nil {
		t.Fatal("expected invalid gender to fail")
	}

	out := mustRun(t, "prefs", "--name", "Jarvis", "--gender", "female", "--language", "ta")
	if !strings.Contains(out, "Name:     Jarvis") || !strings.Contains(out, "Gender:   female") {
		t.Fatalf("prefs output = %q", out)
	}
	if out := mustRun(t, "prefs"); !strings.Contains(out, "Language: ta") {
		t.Fatalf("prefs not persisted: %q", out)
	}

	prompt := mustRun(t, "prompt")
	for _, want := range []string{`"Jarvis"`, "Female assistant voice", "[PLAY_SONG: song_name]", "[User Name]"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestChatSession(t *testing.T) {
	isolate(t)
	out, err := runRootCommand(t, "Tell me a joke\n\nCall mom\nexit\n", "chat")
	if err != nil {
		t.Fatalf("chat: %v\n%s", err, out)
	}
	if !strings.Contains(out, "MPA:") {
		t.Fatalf("chat printed no replies:\n%s", out)
	}
	if !strings.Contains(out, "Call mom") {
		t.Fatalf("call notice missing:\n%s", out)
	}
}
