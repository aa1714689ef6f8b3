package app

import (
    "os"
    "path/filepath"
    "testing"
)

// LoadEnvFiles reads KEY=VALUE pairs and populates the process environment.
func TestLoadEnvFiles_LoadsKeyValues(t *testing.T) {
    t.Setenv("RI_ENCODING", "")
    t.Setenv("PAM_PATH", "")

    dir := t.TempDir()
    envPath := filepath.Join(dir, ".env.test")
    content := "\n# robot settings\nRI_ENCODING=windows-1252\nPAM_PATH=\"C:/pam\"\n"
    if err := os.WriteFile(envPath, []byte(content), 0o600); err != nil {
        t.Fatalf("write dotenv: %v", err)
    }

    if err := LoadEnvFiles(envPath); err != nil {
        t.Fatalf("LoadEnvFiles error: %v", err)
    }

    if got := os.Getenv("RI_ENCODING"); got != "windows-1252" {
        t.Fatalf("RI_ENCODING=%q, want windows-1252", got)
    }
    if got := os.Getenv("PAM_PATH"); got != "C:/pam" {
        t.Fatalf("PAM_PATH=%q, want C:/pam", got)
    }
}

// Later files override earlier ones when loading multiple dotenv files.
func TestLoadEnvFiles_OverrideOrder(t *testing.T) {
    t.Setenv("K", "")
    dir := t.TempDir()
    a := filepath.Join(dir, ".env.a")
    b := filepath.Join(dir, ".env.b")
    if err := os.WriteFile(a, []byte("K=first\n"), 0o600); err != nil { t.Fatalf("write a: %v", err) }
    if err := os.WriteFile(b, []byte("K=second\n"), 0o600); err != nil { t.Fatalf("write b: %v", err) }

    if err := LoadEnvFiles(a, filepath.Join(dir, "missing.env"), b); err != nil {
        t.Fatalf("LoadEnvFiles error: %v", err)
    }
    if got := os.Getenv("K"); got != "second" {
        t.Fatalf("override order failed: got %q, want second", got)
    }
}

// Values already exported by the process win over dotenv files.
func TestLoadEnvFiles_ProcessEnvWins(t *testing.T) {
    t.Setenv("RI_FORMAT", "xlsx")
    p := filepath.Join(t.TempDir(), ".env")
    if err := os.WriteFile(p, []byte("RI_FORMAT=json\n"), 0o600); err != nil { t.Fatalf("write: %v", err) }
    if err := LoadEnvFiles(p); err != nil {
        t.Fatalf("LoadEnvFiles error: %v", err)
    }
    if got := os.Getenv("RI_FORMAT"); got != "xlsx" {
        t.Fatalf("RI_FORMAT=%q, want xlsx", got)
    }
}

func TestApplyEnvOverrides(t *testing.T) {
    t.Setenv("RI_ENCODING", "iso-8859-1")
    t.Setenv("RI_STRATEGY", "header-match")
    t.Setenv("RI_OUTPUT_DIR", "/tmp/out")
    t.Setenv("RI_FORMAT", "json")
    t.Setenv("RI_STRICT", "false")
    t.Setenv("RI_TRANSFER_DECODING", "")
    t.Setenv("RI_MANIFEST", "yes")
    t.Setenv("VERBOSE", "")

    cfg := Config{Encoding: "utf-8", Format: "csv"}
    ApplyEnvOverrides(&cfg)
    if cfg.Encoding != "iso-8859-1" || cfg.Strategy != "header-match" || cfg.OutputDir != "/tmp/out" || cfg.Format != "json" {
        t.Fatalf("string overrides not applied: %+v", cfg)
    }
    if !cfg.Lenient {
        t.Fatalf("RI_STRICT=false should make extraction lenient")
    }
    if cfg.DisableTransferDecoding {
        t.Fatalf("unset RI_TRANSFER_DECODING must not change the default")
    }
    if !cfg.Manifest {
        t.Fatalf("RI_MANIFEST=yes should enable manifests")
    }

    t.Setenv("RI_STRICT", "1")
    ApplyEnvOverrides(&cfg)
    if cfg.Lenient {
        t.Fatalf("RI_STRICT=1 should restore strict mode")
    }
}
