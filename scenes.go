package main

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

const sceneClassRegexStr = `^class\s+(\w+)\s*\(([^)]*)\)\s*:`

// listScenes extracts the scene class names from the Python script. Only
// classes with a Scene type in their base list count; helper classes are
// skipped.
func listScenes(scriptPath string) ([]string, error) {
	data, err := os.ReadFile(scriptPath)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	regex := regexp.MustCompile(sceneClassRegexStr)
	var scenes []string
	for _, line := range strings.Split(string(data), "\n") {
		match := regex.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		if strings.Contains(match[2], "Scene") {
			scenes = append(scenes, match[1])
		}
	}
	return scenes, nil
}

// printScenes lists the renderable scenes, one per line.
func printScenes(w io.Writer, scriptPath string) error {
	scenes, err := listScenes(scriptPath)
	if err != nil {
		return err
	}
	if len(scenes) == 0 {
		fmt.Fprintf(w, "No scenes found in %s.\n", scriptPath)
		return nil
	}
	fmt.Fprintf(w, "Scenes in %s:\n", scriptPath)
	for _, scene := range scenes {
		fmt.Fprintln(w, "  "+scene)
	}
	return nil
}
