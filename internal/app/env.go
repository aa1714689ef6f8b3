package app

import (
    "errors"
    "os"
    "strings"

    "github.com/joho/godotenv"
)

// LoadEnvFiles loads one or more dotenv files into the process environment.
// Later files override earlier ones; non-empty variables already present in the
// process environment are never replaced. Missing files are skipped.
func LoadEnvFiles(paths ...string) error {
    preset := map[string]bool{}
    for _, kv := range os.Environ() {
        if i := strings.IndexByte(kv, '='); i > 0 && kv[i+1:] != "" {
            preset[kv[:i]] = true
        }
    }
    for _, p := range paths {
        if strings.TrimSpace(p) == "" {
            continue
        }
        vals, err := godotenv.Read(p)
        if err != nil {
            if errors.Is(err, os.ErrNotExist) {
                continue
            }
            return err
        }
        for k, v := range vals {
            if preset[k] {
                continue
            }
            _ = os.Setenv(k, v)
        }
    }
    return nil
}
