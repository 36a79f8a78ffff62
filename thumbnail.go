package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

const thumbnailWidth = 640

// writeThumbnail grabs a frame from the rendered video and saves a resized
// PNG next to it, returning the thumbnail path. ffmpeg does the frame dump;
// resizing happens in-process.
func writeThumbnail(runner commandRunner, videoPath string) (string, error) {
	tempDir, err := os.MkdirTemp("", "")
	if err != nil {
		return "", fmt.Errorf("make temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	framePath := filepath.Join(tempDir, "frame.png")
	if err := extractFrame(runner, videoPath, framePath); err != nil {
		return "", err
	}

	thumbPath := strings.TrimSuffix(videoPath, filepath.Ext(videoPath)) + "_thumb.png"
	if err := resizeFrame(framePath, thumbPath); err != nil {
		return "", err
	}
	return thumbPath, nil
}

// extractFrame dumps the frame at the one-second mark; early enough to exist
// in any render, late enough to skip the fade-in from black.
func extractFrame(runner commandRunner, videoPath, framePath string) error {
	args := []string{
		"-hide_banner", "-loglevel", "error", "-ss", "1",
		"-i", videoPath, "-frames:v", "1", "-y", framePath,
	}
	return runner.RunQuiet("ffmpeg", args...)
}

func resizeFrame(framePath, thumbPath string) error {
	f, err := imaging.Open(framePath)
	if err != nil {
		return err
	}
	img := imaging.Resize(f, thumbnailWidth, 0, imaging.Lanczos)
	return imaging.Save(img, thumbPath)
}
