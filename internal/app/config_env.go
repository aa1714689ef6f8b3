package app

import (
    "os"
    "strings"
)

// ApplyEnvOverrides overrides cfg fields with environment variables when they
// are set. Env takes precedence over the config file; flags are applied after
// this and win over both.
func ApplyEnvOverrides(cfg *Config) {
    if cfg == nil { return }

    if v := strings.TrimSpace(os.Getenv("RI_ENCODING")); v != "" { cfg.Encoding = v }
    if v := strings.TrimSpace(os.Getenv("RI_STRATEGY")); v != "" { cfg.Strategy = v }
    if v := strings.TrimSpace(os.Getenv("RI_OUTPUT_DIR")); v != "" { cfg.OutputDir = v }
    if v := strings.TrimSpace(os.Getenv("RI_FORMAT")); v != "" { cfg.Format = v }

    // Booleans override when env present and truthy/falsey
    setBool := func(dst *bool, envKey string, invert bool) {
        if s := strings.ToLower(strings.TrimSpace(os.Getenv(envKey))); s != "" {
            switch s {
            case "1", "true", "yes", "on":
                *dst = !invert
            case "0", "false", "no", "off":
                *dst = invert
            }
        }
    }
    setBool(&cfg.Lenient, "RI_STRICT", true)
    setBool(&cfg.DisableTransferDecoding, "RI_TRANSFER_DECODING", true)
    setBool(&cfg.Manifest, "RI_MANIFEST", false)
    setBool(&cfg.Verbose, "VERBOSE", false)
}
