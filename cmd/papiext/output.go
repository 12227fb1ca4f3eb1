package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"sigs.k8s.io/yaml"
)

type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
	formatYAML outputFormat = "yaml"
	formatEnv  outputFormat = "env"
)

var outputFormats = []outputFormat{formatText, formatJSON, formatYAML, formatEnv}

func joinFormats() string {
	names := make([]string, 0, len(outputFormats))
	for _, f := range outputFormats {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

func parseFormat(s string) (outputFormat, error) {
	for _, f := range outputFormats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want one of: %s)", s, joinFormats())
}

func writeReport(w io.Writer, format outputFormat, r *report) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case formatYAML:
		b, err := yaml.Marshal(r)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case formatEnv:
		return writeEnv(w, r.CgoEnv)
	default:
		return writeText(w, r)
	}
}

// writeEnv prints shell export statements, sorted by name.
func writeEnv(w io.Writer, env map[string]string) error {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "export %s=%s\n", k, shellQuote(env[k])); err != nil {
			return err
		}
	}
	return nil
}

// shellQuote wraps s in single quotes for POSIX shells.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func writeText(w io.Writer, r *report) error {
	res := r.Resolution
	if res.Found {
		fmt.Fprintf(w, "%s found in %s (strategy: %s)\n\n", res.Library, res.LibraryDir, res.Strategy)
	} else {
		fmt.Fprintf(w, "%s not found; relying on default library search paths\n\n", res.Library)
	}

	attempts := tablewriter.NewWriter(w)
	attempts.SetHeader([]string{"Strategy", "Outcome", "Library Dir", "Error"})
	attempts.SetAutoWrapText(false)
	for _, at := range res.Attempts {
		attempts.Append([]string{at.Strategy, string(at.Outcome), at.LibraryDir, at.Error})
	}
	attempts.Render()

	fmt.Fprintln(w)

	ext := r.Extension
	descriptor := tablewriter.NewWriter(w)
	descriptor.SetHeader([]string{"Field", "Value"})
	descriptor.SetAutoWrapText(false)
	descriptor.Append([]string{"Extension", ext.Name})
	descriptor.Append([]string{"Sources", strings.Join(ext.Sources, " ")})
	descriptor.Append([]string{"Libraries", strings.Join(ext.Libraries, " ")})
	descriptor.Append([]string{"Include Dirs", strings.Join(ext.IncludeDirs, " ")})
	descriptor.Append([]string{"Library Dirs", strings.Join(ext.LibraryDirs, " ")})
	descriptor.Append([]string{"Runtime Library Dirs", strings.Join(ext.RuntimeLibraryDirs, " ")})
	descriptor.Render()

	return nil
}
