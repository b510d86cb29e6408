package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// envFiles lists the dotenv-style files Load reads, most specific first.
func envFiles() []string {
	var files []string
	if explicit := strings.TrimSpace(os.Getenv("MPA_ENV_FILE")); explicit != "" {
		files = append(files, explicit)
	}
	if home, err := resolveHomeDir(); err == nil {
		files = append(files,
			filepath.Join(home, ".config", "mpa", "env"),
			filepath.Join(home, ConfigDir, "env"),
			filepath.Join(home, ConfigDir, ".env"),
		)
	}
	return files
}

// LoadEnvFileCandidates exports KEY=VALUE pairs from every env file that
// exists. Variables already in the process environment keep their value.
func LoadEnvFileCandidates() {
	done := make(map[string]bool)
	for _, path := range envFiles() {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		if done[path] {
			continue
		}
		done[path] = true
		_ = applyEnvFile(path)
	}
}

func applyEnvFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		key, val, ok := parseEnvLine(sc.Text())
		if !ok {
			continue
		}
		if _, set := os.LookupEnv(key); !set {
			os.Setenv(key, val)
		}
	}
	return sc.Err()
}

// parseEnvLine accepts "KEY=VALUE" with an optional "export " prefix and
// optional matching quotes around VALUE. Blank lines and # comments are
// skipped.
func parseEnvLine(line string) (key, val string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || line[0] == '#' {
		return "", "", false
	}
	line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	key, val, found := strings.Cut(line, "=")
	key = strings.TrimSpace(key)
	if !found || key == "" {
		return "", "", false
	}
	val = strings.TrimSpace(val)
	if n := len(val); n >= 2 && (val[0] == '"' || val[0] == '\'') && val[n-1] == val[0] {
		val = val[1 : n-1]
	}
	return key, val, true
}
