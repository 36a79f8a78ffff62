package main

type Args struct {
	Scene     string `arg:"positional" help:"Scene class to render. Defaults to HelloManimTest."`
	Quality   string `arg:"positional" help:"low, medium, high or 4k (aliases: l/m/h/k, ql/qm/qh/qk). Anything else renders at low."`
	Preview   bool   `arg:"-p" help:"Open the rendered video when done."`
	Thumbnail bool   `arg:"-t" help:"Write a PNG thumbnail next to the rendered video."`
	List      bool   `arg:"-l" help:"List the scenes in the script and exit."`
	DryRun    bool   `arg:"-n,--dry-run" help:"Print the render command without running it."`
	Config    string `arg:"-c" help:"Path to a YAML config file. render.yaml is picked up automatically."`
	Verbose   bool   `arg:"-v" help:"Enable debug logging."`
}

func (Args) Description() string {
	return "Renders Manim scenes from the project script with quality presets."
}

func (Args) Version() string {
	return "manim-render " + appVersion
}
