// File: zomfile.go
// Title: Project File Reader
// Description: Parses .zom project files into named string-to-string
//              mappings for the surrounding tooling.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-09-10
// Modified: 2025-09-10
//
// Change History:
// - 2025-09-10 v0.1.0: Initial implementation

package zomfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	puterror "github.com/msto63/put/core/error"
	"github.com/msto63/put/utils/stringx"
)

// Section names recognized in a .zom file. Entries under any other
// section header are skipped.
const (
	SectionProjectInfo     = "Project Info"
	SectionDependencies    = "Dependencies"
	SectionBuildSettings   = "Build Settings"
	SectionRuntimeSettings = "Runtime Settings"
	SectionCustomSettings  = "Custom Settings"
)

// ProjectConfig holds the parsed contents of a .zom project file
type ProjectConfig struct {
	ProjectInfo     map[string]string
	Dependencies    map[string]string
	BuildSettings   map[string]string
	RuntimeSettings map[string]string
	CustomSettings  map[string]string
}

// NewProjectConfig creates an empty project configuration
func NewProjectConfig() *ProjectConfig {
	return &ProjectConfig{
		ProjectInfo:     make(map[string]string),
		Dependencies:    make(map[string]string),
		BuildSettings:   make(map[string]string),
		RuntimeSettings: make(map[string]string),
		CustomSettings:  make(map[string]string),
	}
}

// Name returns the project name, or a fallback when not set
func (c *ProjectConfig) Name() string {
	return stringx.DefaultIfBlank(c.ProjectInfo["name"], "Unknown")
}

// Version returns the project version, or a fallback when not set
func (c *ProjectConfig) Version() string {
	return stringx.DefaultIfBlank(c.ProjectInfo["version"], "0.0.0")
}

// section returns the map backing a known section name, or nil for an
// unknown section
func (c *ProjectConfig) section(name string) map[string]string {
	switch name {
	case SectionProjectInfo:
		return c.ProjectInfo
	case SectionDependencies:
		return c.Dependencies
	case SectionBuildSettings:
		return c.BuildSettings
	case SectionRuntimeSettings:
		return c.RuntimeSettings
	case SectionCustomSettings:
		return c.CustomSettings
	default:
		return nil
	}
}

// Parse reads a .zom document line by line. Section headers start with
// "##", entries with "-" and carry a "key: value" pair. A dash line
// without a colon is malformed and aborts parsing with the offending
// line number.
func Parse(r io.Reader) (*ProjectConfig, error) {
	config := NewProjectConfig()
	scanner := bufio.NewScanner(r)

	currentSection := ""
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++
		trimmed := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(trimmed, "##"):
			currentSection = strings.TrimSpace(trimmed[2:])
		case strings.HasPrefix(trimmed, "-"):
			key, value, found := strings.Cut(trimmed[1:], ":")
			if !found {
				return nil, puterror.New(fmt.Sprintf("malformed entry %q: missing ':'", trimmed)).
					WithCode(puterror.CodeZomSyntax).
					WithLine(lineNumber).
					WithOperation("zomfile.Parse")
			}
			if section := config.section(currentSection); section != nil {
				section[strings.TrimSpace(key)] = strings.TrimSpace(value)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, puterror.Wrap(err, "failed to read project file").
			WithCode(puterror.CodeInternal).
			WithOperation("zomfile.Parse")
	}

	return config, nil
}

// ParseFile opens and parses a .zom project file
func ParseFile(path string) (*ProjectConfig, error) {
	if stringx.IsBlank(path) {
		return nil, puterror.New("project file path cannot be empty").
			WithCode(puterror.CodeValidationFailed).
			WithOperation("zomfile.ParseFile")
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, puterror.Wrap(err, fmt.Sprintf("project file not found: %s", path)).
				WithCode(puterror.CodeNotFound).
				WithOperation("zomfile.ParseFile")
		}
		return nil, puterror.Wrap(err, fmt.Sprintf("failed to open project file: %s", path)).
			WithCode(puterror.CodeInternal).
			WithOperation("zomfile.ParseFile")
	}
	defer file.Close()

	config, err := Parse(file)
	if err != nil {
		if putErr, ok := err.(*puterror.Error); ok {
			return nil, putErr.WithDetail("path", path)
		}
		return nil, err
	}
	return config, nil
}
