package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/ironsheep/image-mosaic/internal/logger"
	"github.com/ironsheep/image-mosaic/internal/pipeline"
	"github.com/ironsheep/image-mosaic/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("image-mosaic %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			newFlagSet(pipeline.DefaultConfig(), new(string)).Usage()
			return
		case "serve":
			serve()
			return
		}
	}

	cfg, logFile := parseFlags(os.Args[1:])
	configureLogging(logFile)

	if err := cfg.Validate(); err != nil {
		log.Printf("Configuration error: %v", err)
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	res, err := pipeline.Run(cfg)
	if err != nil {
		log.Printf("Application error: %v", err)
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s: %dx%d image, %dx%d grid, %d tiles, mean ΔE %.2f (%s)\n",
		res.OutputPath, res.Width, res.Height, res.Resolution, res.Resolution,
		res.Tiles, res.Fidelity, res.Elapsed.Round(time.Millisecond))
}

// serve runs the MCP server over stdin/stdout.
func serve() {
	// stdout is for MCP protocol
	configureLogging(os.Getenv("IMAGE_MOSAIC_LOG_FILE"))

	srv := server.New(Version)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// configureLogging sends log output to stderr, or to logFile when set.
func configureLogging(logFile string) {
	log.SetOutput(os.Stderr)
	log.SetFlags(logger.Flags)

	if logFile != "" {
		// The file stays open for the life of the process.
		if _, err := logger.Init(logFile); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
			os.Exit(1)
		}
	}

	if os.Getenv("IMAGE_MOSAIC_LOG_LEVEL") == "debug" {
		log.Printf("Image Mosaic v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}
}

// parseFlags defines and parses command-line flags, returning them
// in a Config struct along with the requested log file path.
func parseFlags(args []string) (*pipeline.Config, string) {
	cfg := pipeline.DefaultConfig()
	var logFile string

	// ExitOnError handles parse failures.
	_ = newFlagSet(cfg, &logFile).Parse(args)
	return cfg, logFile
}

// newFlagSet binds every command-line flag to cfg and logFile.
func newFlagSet(cfg *pipeline.Config, logFile *string) *pflag.FlagSet {
	fs := pflag.NewFlagSet("image-mosaic", pflag.ExitOnError)
	fs.StringVarP(&cfg.InputPath, "input", "i", "", "Path to the input image.")
	fs.StringVarP(&cfg.OutputPath, "output", "o", cfg.OutputPath, "Path of the mosaic to write. The extension picks the format (.png, .jpg, .bmp, .svg).")
	fs.IntVarP(&cfg.Resolution, "resolution", "n", cfg.Resolution, "Number of cells along each edge of the image.")
	fs.StringVar(&cfg.Background, "background", cfg.Background, "Background color in hex, painted before the tiles.")
	fs.StringVar(&cfg.OverlayPath, "overlay", "", "Also write the source image with cell boundaries drawn over it to this path.")
	fs.BoolVar(&cfg.Verify, "verify", false, "Check that the cells tile the image exactly before rendering.")
	fs.IntVar(&cfg.JPEGQuality, "jpeg-quality", cfg.JPEGQuality, "JPEG quality (1-100) for .jpg output.")
	fs.StringVar(logFile, "log-file", "", "Write log output to this file instead of stderr.")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "image-mosaic - render an image as an NxN grid of solid color tiles")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  image-mosaic -i input.jpg [options]")
		fmt.Fprintln(os.Stderr, "  image-mosaic serve           Run as an MCP server over stdin/stdout")
		fmt.Fprintln(os.Stderr, "  image-mosaic --version       Print version information")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Options:")
		fs.PrintDefaults()
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Environment variables:")
		fmt.Fprintln(os.Stderr, "  IMAGE_MOSAIC_LOG_LEVEL=debug    Enable debug logging")
		fmt.Fprintln(os.Stderr, "  IMAGE_MOSAIC_LOG_FILE=path      Log file for serve mode")
	}

	return fs
}
