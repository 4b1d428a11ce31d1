package config

import (
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"os"
	"path/filepath"
	"strings"
)

const (
	EnvColor        = "ATTENDANCE_COLOR"
	EnvViewLayout   = "ATTENDANCE_VIEW_LAYOUT"
	EnvReportDir    = "ATTENDANCE_REPORT_DIR"
	EnvStudentsFile = "ATTENDANCE_STUDENTS_FILE"
	EnvLog          = "ATTENDANCE_LOG"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	LayoutPaged = "paged"
	LayoutWide  = "wide"
)

// Config - Settings for the attendance shell
//   - Color selects coloured output, auto colours only when stdout is a terminal
//   - ViewLayout selects how a student's attendance is rendered
//   - ReportDir is prefixed to relative report file names
//   - StudentsFile is an optional bulk file loaded at startup
//   - Log turns shell logging to stderr on or off
type Config struct {
	Color        string `validate:"required,oneof=auto always never"`
	ViewLayout   string `validate:"required,oneof=paged wide"`
	ReportDir    string `validate:"required"`
	StudentsFile string
	Log          string `validate:"required,oneof=on off"`
}

var validate = validator.New()

// Load - Reads the given env files (".env" if none is given) into the environment and builds a Config from
// environment variables. Missing env files are ignored, existing environment variables win over the files.
//
// It returns:
//   - config is the validated configuration
//   - err is a standard error if an env file could not be parsed or a value is invalid
func Load(envFiles ...string) (config Config, err error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, envFile := range envFiles {
		err = godotenv.Load(envFile)
		if errors.Is(err, os.ErrNotExist) {
			err = nil
			continue
		}
		if err != nil {
			err = fmt.Errorf("error while loading env file %s: %s", envFile, err)
			return
		}
	}

	config = Config{
		Color:        getEnv(EnvColor, ColorAuto),
		ViewLayout:   getEnv(EnvViewLayout, LayoutPaged),
		ReportDir:    getEnv(EnvReportDir, "."),
		StudentsFile: strings.TrimSpace(os.Getenv(EnvStudentsFile)),
		Log:          getEnv(EnvLog, "off"),
	}

	err = validate.Struct(config)
	if err != nil {
		err = fmt.Errorf("invalid configuration: %s", err)
	}

	return
}

// ColorEnabled - Tells whether output written to the file descriptor should be coloured
func (C Config) ColorEnabled(fd uintptr) bool {
	switch C.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// LogEnabled - Tells whether the shell should log to stderr
func (C Config) LogEnabled() bool {
	return C.Log == "on"
}

// WideView - Tells whether the single table view layout is selected
func (C Config) WideView() bool {
	return C.ViewLayout == LayoutWide
}

// ReportPath - Returns fileName placed in the report directory, absolute names are returned as is
func (C Config) ReportPath(fileName string) string {
	if filepath.IsAbs(fileName) || C.ReportDir == "" {
		return fileName
	}
	return filepath.Join(C.ReportDir, fileName)
}

// getEnv - Returns the trimmed, lower cased value of key or def if it is unset or blank
func getEnv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if key == EnvReportDir {
		return v
	}
	return strings.ToLower(v)
}
