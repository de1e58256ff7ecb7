package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-csv2docx/internal/assets"
	"github.com/alnah/go-csv2docx/internal/config"
)

// Doctor statuses.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"`
	Config   configInfo `json:"config"`
	Styles   []string   `json:"styles"`
	Env      envInfo    `json:"environment"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// configInfo holds config resolution results.
type configInfo struct {
	Name    string   `json:"name,omitempty"`
	Loaded  bool     `json:"loaded"`
	Tried   []string `json:"tried,omitempty"`
	Style   string   `json:"style"`
	Variant string   `json:"variant"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string   `json:"os"`
	Arch          string   `json:"arch"`
	Container     bool     `json:"container"`
	ContainerHint string   `json:"container_hint,omitempty"`
	CI            bool     `json:"ci"`
	Unknown       []string `json:"unknown_vars,omitempty"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable   bool   `json:"temp_writable"`
	OutputDir      string `json:"output_dir,omitempty"`
	OutputWritable bool   `json:"output_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	fs := flag.NewFlagSet(cmdDoctor, flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	jsonOutput := fs.Bool("json", false, "print results as JSON")
	configName := fs.StringP("config", "c", "", "config file name or path")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return ExitUsage
	}

	result := runDoctor(*configName)

	if *jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == statusErrors {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks. An empty configName falls back
// to CSV2DOCX_CONFIG.
func runDoctor(configName string) *doctorResult {
	result := &doctorResult{
		Status: statusReady,
		Env: envInfo{
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
		},
	}

	envCfg := loadEnvConfig()
	if configName == "" {
		configName = envCfg.ConfigPath
	}

	cfg := checkConfig(result, configName, envCfg)
	checkStyles(result, cfg)
	checkEnvironment(result)
	checkSystem(result, cfg.Output.DefaultDir)

	if len(result.Errors) > 0 {
		result.Status = statusErrors
	} else if len(result.Warnings) > 0 {
		result.Status = statusWarnings
	}

	return result
}

// checkConfig loads and validates the config. It always returns a usable
// config so later checks can run.
func checkConfig(result *doctorResult, name string, envCfg *envConfig) *config.Config {
	result.Config.Name = name

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
			if errors.Is(err, config.ErrConfigNotFound) {
				result.Config.Tried = config.SearchPaths(name)
			}
		} else {
			cfg = loaded
			result.Config.Loaded = true
		}
	}

	applyEnvConfig(envCfg, cfg)
	if err := cfg.Validate(); err != nil {
		result.Errors = append(result.Errors, err.Error())
	}

	result.Config.Style = cfg.Style
	result.Config.Variant = cfg.CV.Variant
	return cfg
}

// checkStyles parses every embedded preset and resolves the configured one.
func checkStyles(result *doctorResult, cfg *config.Config) {
	for _, name := range assets.StyleNames() {
		data, err := assets.LoadStyle(name)
		if err == nil {
			_, err = config.ParseStyles([]byte(data))
		}
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("embedded style %q: %v", name, err))
			continue
		}
		result.Styles = append(result.Styles, name)
	}

	loader, err := newAssetLoader(cfg.Assets.BasePath)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return
	}
	if _, err := buildStyles(cfg, loader); err != nil {
		result.Errors = append(result.Errors, err.Error())
	}
}

// checkEnvironment detects container and CI environments and unknown
// CSV2DOCX_* variables.
func checkEnvironment(result *doctorResult) {
	result.Env.Container, result.Env.ContainerHint = isContainer()

	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			result.Env.CI = true
			break
		}
	}

	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, "CSV2DOCX_") && !knownEnvVars[name] {
			result.Env.Unknown = append(result.Env.Unknown, name)
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Unknown environment variable %s (typo?)", name))
		}
	}
}

// isContainer detects if running in a container environment.
// Returns (isContainer, hint) where hint indicates which signal was detected.
func isContainer() (bool, string) {
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true, "/.dockerenv"
	}
	if v := os.Getenv("container"); v != "" {
		return true, "container=" + v
	}
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkSystem verifies the temp directory and the default output directory
// accept writes.
func checkSystem(result *doctorResult, outputDir string) {
	tmpDir := os.TempDir()
	if dirWritable(tmpDir) {
		result.System.TempWritable = true
	} else {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", tmpDir))
	}

	if outputDir == "" {
		return
	}
	result.System.OutputDir = outputDir
	info, err := os.Stat(outputDir)
	switch {
	case err != nil:
		// generateFile creates it on demand.
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Output directory does not exist yet: %s", outputDir))
	case !info.IsDir():
		result.Errors = append(result.Errors,
			fmt.Sprintf("Output directory is a file: %s", outputDir))
	case dirWritable(outputDir):
		result.System.OutputWritable = true
	default:
		result.Errors = append(result.Errors,
			fmt.Sprintf("Output directory not writable: %s", outputDir))
	}
}

func dirWritable(dir string) bool {
	testFile := filepath.Join(dir, ".csv2docx-doctor-test")
	if err := os.WriteFile(testFile, []byte("test"), 0o600); err != nil {
		return false
	}
	_ = os.Remove(testFile)
	return true
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "csv2docx doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Configuration")
	switch {
	case r.Config.Name == "":
		fmt.Fprintln(w, "  [OK] Using built-in defaults")
	case r.Config.Loaded:
		fmt.Fprintf(w, "  [OK] Loaded %s\n", r.Config.Name)
	default:
		fmt.Fprintf(w, "  [ERROR] Could not load %s\n", r.Config.Name)
		for _, p := range r.Config.Tried {
			fmt.Fprintf(w, "          tried %s\n", p)
		}
	}
	fmt.Fprintf(w, "  [OK] Style: %s\n", r.Config.Style)
	fmt.Fprintf(w, "  [OK] CV variant: %s\n", r.Config.Variant)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Style presets")
	if len(r.Styles) > 0 {
		fmt.Fprintf(w, "  [OK] Embedded: %s\n", strings.Join(r.Styles, ", "))
	} else {
		fmt.Fprintln(w, "  [ERROR] No usable embedded preset")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintf(w, "  [OK] Container: detected (%s)\n", r.Env.ContainerHint)
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	if r.System.OutputWritable {
		fmt.Fprintf(w, "  [OK] Output directory: %s\n", r.System.OutputDir)
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: Ready to generate")
	case statusWarnings:
		fmt.Fprintln(w, "Status: Ready with warnings")
	case statusErrors:
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
