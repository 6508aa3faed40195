package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDotEnv_LoadsValuesAndIgnoresNoise(t *testing.T) {
	t.Setenv("CATALOG_FILE", "")
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")

	path := writeDotEnv(t, `
# comment

CATALOG_FILE=./catalog.hcl
export PORT=9000
LOG_LEVEL="debug"
`)

	if err := loadDotEnv(path); err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}

	if got := os.Getenv("CATALOG_FILE"); got != "./catalog.hcl" {
		t.Fatalf("CATALOG_FILE=%q, want %q", got, "./catalog.hcl")
	}
	if got := os.Getenv("PORT"); got != "9000" {
		t.Fatalf("PORT=%q, want %q", got, "9000")
	}
	if got := os.Getenv("LOG_LEVEL"); got != "debug" {
		t.Fatalf("LOG_LEVEL=%q, want %q", got, "debug")
	}
}

func TestLoadDotEnv_DoesNotOverwriteExistingEnv(t *testing.T) {
	t.Setenv("DB_PATH", "already.db")

	path := writeDotEnv(t, "DB_PATH=fromfile.db\n")

	if err := loadDotEnv(path); err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}

	if got := os.Getenv("DB_PATH"); got != "already.db" {
		t.Fatalf("DB_PATH=%q, want %q", got, "already.db")
	}
}

func TestLoadDotEnv_MissingFileIsIgnored(t *testing.T) {
	if err := loadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}
}

func TestParseDotEnv_QuotesAndTrailingComments(t *testing.T) {
	values, err := parseDotEnv(strings.NewReader(`
A='hello world'
B=plain # trailing
C="keep # this"
D=
not a pair
=novalue
`))
	if err != nil {
		t.Fatalf("parseDotEnv: %v", err)
	}

	want := [][2]string{{"A", "hello world"}, {"B", "plain"}, {"C", "keep # this"}, {"D", ""}}
	if len(values) != len(want) {
		t.Fatalf("got %d values, want %d: %v", len(values), len(want), values)
	}
	for i := range want {
		if values[i] != want[i] {
			t.Fatalf("value %d = %v, want %v", i, values[i], want[i])
		}
	}
}

func writeDotEnv(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	return path
}
