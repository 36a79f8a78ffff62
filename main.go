package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/alexflint/go-arg"
	log "github.com/sirupsen/logrus"
)

const appVersion = "1.1.0"

func main() {
	var args Args
	arg.MustParse(&args)

	log.SetLevel(log.WarnLevel)
	if args.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	err := run(os.Stdout, args, newExecRunner)
	if err == nil {
		return
	}
	var rerr renderError
	if !errors.As(err, &rerr) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(exitCode(err))
}

// run drives one invocation end to end: merge config, resolve the quality
// preset, print the status line, launch the renderer, report the output
// location. The runner factory is injected so tests can observe the exact
// subprocess command.
func run(w io.Writer, args Args, newRunner func(Config) commandRunner) error {
	cfg, err := loadConfig(args.Config)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"manim": cfg.ManimBin, "script": cfg.Script}).Debug("config loaded")

	if args.List {
		return printScenes(w, cfg.Script)
	}

	scene := args.Scene
	if scene == "" {
		scene = cfg.DefaultScene
	}
	quality := args.Quality
	if quality == "" {
		quality = cfg.DefaultQuality
	}
	preset := resolvePreset(quality)

	argv := renderArgs(cfg, preset, scene, args.Preview)
	if args.DryRun {
		fmt.Fprintln(w, cfg.ManimBin+" "+strings.Join(argv, " "))
		return nil
	}

	runner := newRunner(cfg)
	fmt.Fprintf(w, "Rendering scene '%s' at %s...\n", scene, preset.Description)
	log.Debugf("command: %s %s", cfg.ManimBin, strings.Join(argv, " "))

	start := time.Now()
	renderErr := runner.Run(cfg.ManimBin, argv...)
	log.Debugf("renderer finished in %s", time.Since(start).Round(time.Millisecond))

	fmt.Fprintf(w, "Output files are in %s.\n", cfg.outputDir())
	if renderErr != nil {
		var exitErr *exec.ExitError
		if errors.As(renderErr, &exitErr) {
			return renderError{renderErr}
		}
		return fmt.Errorf("run %s: %w", cfg.ManimBin, renderErr)
	}

	if args.Thumbnail {
		thumbPath, err := writeThumbnail(runner, cfg.videoPath(preset, scene))
		if err != nil {
			return fmt.Errorf("thumbnail: %w", err)
		}
		fmt.Fprintf(w, "Thumbnail saved to %s.\n", thumbPath)
	}
	return nil
}
