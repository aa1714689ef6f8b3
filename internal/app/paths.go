package app

import (
    "path/filepath"
    "strings"

    "github.com/hyperifyio/rireport/internal/export"
)

// outputFor returns the format and output path for one input. An explicit
// output path wins; otherwise the input's base name gets the format's
// extension, placed in the output dir or next to the input.
func (a *App) outputFor(input string) (export.Format, string, error) {
    if p := trim(a.cfg.OutputPath); p != "" {
        if trim(a.cfg.Format) == "" {
            f, err := export.FormatFromPath(p)
            return f, p, err
        }
        f, err := export.ParseFormat(a.cfg.Format)
        return f, p, err
    }
    f, err := export.ParseFormat(a.cfg.Format)
    if err != nil {
        return "", "", err
    }
    dir := trim(a.cfg.OutputDir)
    if dir == "" { dir = filepath.Dir(input) }
    base := filepath.Base(input)
    base = strings.TrimSuffix(base, filepath.Ext(base))
    if base == "" || base == "." { base = "report" }
    out := filepath.Join(dir, base+"."+string(f))
    if filepath.Clean(out) == filepath.Clean(input) {
        out = filepath.Join(dir, base+".extracted."+string(f))
    }
    return f, out, nil
}
