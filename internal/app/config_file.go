package app

import (
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "path/filepath"

    yaml "gopkg.in/yaml.v3"

    "github.com/hyperifyio/rireport/internal/export"
    "github.com/hyperifyio/rireport/internal/report"
)

// FileConfig represents the single-file configuration schema.
type FileConfig struct {
    Inputs []string `yaml:"inputs" json:"inputs"`

    Output struct {
        Path     string `yaml:"path" json:"path"`
        Dir      string `yaml:"dir" json:"dir"`
        Format   string `yaml:"format" json:"format"`
        Manifest bool   `yaml:"manifest" json:"manifest"`
    } `yaml:"output" json:"output"`

    Report struct {
        Encoding         string            `yaml:"encoding" json:"encoding"`
        Strategy         string            `yaml:"strategy" json:"strategy"`
        Strict           *bool             `yaml:"strict" json:"strict"`
        TransferDecoding *bool             `yaml:"transferDecoding" json:"transferDecoding"`
        Columns          map[string]string `yaml:"columns" json:"columns"`
    } `yaml:"report" json:"report"`

    Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
    var fc FileConfig
    b, err := os.ReadFile(path)
    if err != nil {
        return fc, err
    }
    switch ext := filepath.Ext(path); ext {
    case ".yaml", ".yml":
        if err := yaml.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse yaml: %w", err)
        }
    case ".json":
        if err := json.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse json: %w", err)
        }
    default:
        // Try YAML then JSON
        if err := yaml.Unmarshal(b, &fc); err != nil {
            if jerr := json.Unmarshal(b, &fc); jerr != nil {
                return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
            }
        }
    }
    return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields that
// are currently unset/zero in cfg.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
    if cfg == nil { return }

    if len(cfg.Inputs) == 0 && len(fc.Inputs) > 0 { cfg.Inputs = append([]string{}, fc.Inputs...) }

    if cfg.OutputPath == "" && fc.Output.Path != "" { cfg.OutputPath = fc.Output.Path }
    if cfg.OutputDir == "" && fc.Output.Dir != "" { cfg.OutputDir = fc.Output.Dir }
    if cfg.Format == "" && fc.Output.Format != "" { cfg.Format = fc.Output.Format }
    if !cfg.Manifest && fc.Output.Manifest { cfg.Manifest = true }

    if cfg.Encoding == "" && fc.Report.Encoding != "" { cfg.Encoding = fc.Report.Encoding }
    if cfg.Strategy == "" && fc.Report.Strategy != "" { cfg.Strategy = fc.Report.Strategy }
    // Strictness defaults on; only an explicit false relaxes it.
    if fc.Report.Strict != nil && !*fc.Report.Strict { cfg.Lenient = true }
    if fc.Report.TransferDecoding != nil && !*fc.Report.TransferDecoding { cfg.DisableTransferDecoding = true }
    if len(cfg.Columns) == 0 && len(fc.Report.Columns) > 0 {
        cfg.Columns = make(map[string]string, len(fc.Report.Columns))
        for k, v := range fc.Report.Columns { cfg.Columns[k] = v }
    }

    if !cfg.Verbose && fc.Verbose { cfg.Verbose = true }
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
    if len(cfg.Inputs) == 0 {
        return errors.New("config: at least one report file is required")
    }
    for _, in := range cfg.Inputs {
        if trim(in) == "" {
            return errors.New("config: empty report path")
        }
    }
    if trim(cfg.OutputPath) != "" && len(cfg.Inputs) > 1 {
        return errors.New("config: output path needs exactly one input; use output dir for batches")
    }
    if trim(cfg.Format) != "" {
        if _, err := export.ParseFormat(cfg.Format); err != nil {
            return fmt.Errorf("config: %w", err)
        }
    } else if trim(cfg.OutputPath) != "" {
        if _, err := export.FormatFromPath(cfg.OutputPath); err != nil {
            return fmt.Errorf("config: output path: %w", err)
        }
    }
    if _, err := report.ParseStrategy(cfg.Strategy); err != nil {
        return fmt.Errorf("config: %w", err)
    }
    for src, dst := range cfg.Columns {
        if trim(src) == "" || trim(dst) == "" {
            return errors.New("config: report.columns entries must be non-empty")
        }
    }
    return nil
}

func trim(s string) string {
    i := 0
    j := len(s)
    for i < j && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') { i++ }
    for j > i && (s[j-1] == ' ' || s[j-1] == '\t' || s[j-1] == '\n' || s[j-1] == '\r') { j-- }
    return s[i:j]
}
