// mshtool is a CLI utility for producing and inspecting MSH mesh binaries.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/turtlep/gomsh/internal/config"
	"github.com/turtlep/gomsh/internal/logger"
	"github.com/turtlep/gomsh/pkg/msh"
	"github.com/turtlep/gomsh/pkg/obj"
	"github.com/turtlep/gomsh/pkg/stl"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "export":
		cmdExport(args)
	case "info":
		cmdInfo(args)
	case "dump":
		cmdDump(args)
	case "config":
		cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`mshtool - MSH mesh binary utility

Usage:
  mshtool <command> [options]

Commands:
  export <input.obj|input.stl> [output.msh]  Convert a mesh to MSH
  info <file.msh>                            Show header and attribute table
  dump <file.msh>                            Print vertex records
  config init [path]                         Write the default config file

Export options:
  -forward, -up       Source axes (+X -X +Y -Y +Z -Z)
  -flip-u, -flip-v    Mirror texture coordinates
  -big-endian         Write big-endian output
  -texture <name>     Texture name to embed
  -config <path>      Config file to load

Examples:
  mshtool export model.obj model.msh
  mshtool export -forward +Y -up +Z -flip-v scan.stl
  mshtool info model.msh
  mshtool dump -n 10 model.msh`)
}

func cmdExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	forward := fs.String("forward", "", "Forward axis override")
	up := fs.String("up", "", "Up axis override")
	flipU := fs.Bool("flip-u", false, "Mirror the U texture coordinate")
	flipV := fs.Bool("flip-v", false, "Mirror the V texture coordinate")
	bigEndian := fs.Bool("big-endian", false, "Write big-endian output")
	texture := fs.String("texture", "", "Texture name to embed")
	logLevel := fs.String("log-level", "", "Log level override")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: mshtool export [options] <input.obj|input.stl> [output.msh]")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.Apply(config.Overrides{
		Forward:   *forward,
		Up:        *up,
		FlipU:     *flipU,
		FlipV:     *flipV,
		BigEndian: *bigEndian,
		LogLevel:  *logLevel,
	})

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	inputPath := fs.Arg(0)
	outputPath := strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".msh"
	if fs.NArg() > 1 {
		outputPath = fs.Arg(1)
	}

	mesh, err := loadMesh(inputPath)
	if err != nil {
		logger.Error("loading mesh failed", zap.String("input", inputPath), zap.Error(err))
		os.Exit(1)
	}
	if *texture != "" {
		mesh.TextureName = *texture
	}

	meshCfg, err := cfg.Export.MeshConfig()
	if err != nil {
		logger.Error("invalid export settings", zap.Error(err))
		os.Exit(1)
	}

	logger.Debug("export settings",
		zap.Stringer("forward", meshCfg.Forward),
		zap.Stringer("up", meshCfg.Up),
		zap.Bool("flip_u", meshCfg.FlipU),
		zap.Bool("flip_v", meshCfg.FlipV),
		zap.Bool("big_endian", meshCfg.BigEndian))

	if err := msh.ExportToPath(mesh, meshCfg, outputPath); err != nil {
		logger.Error("export failed", zap.String("output", outputPath), zap.Error(err))
		os.Exit(1)
	}

	logger.Info("exported mesh",
		zap.String("output", outputPath),
		zap.Int("vertices", mesh.VertexCount()),
		zap.String("texture", mesh.TextureName))
}

// loadMesh picks a reader by file extension.
func loadMesh(path string) (*msh.Mesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return obj.ParseFile(path)
	case ".stl":
		return stl.ParseFile(path)
	default:
		return nil, fmt.Errorf("unsupported input format: %s", filepath.Ext(path))
	}
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: mshtool info <file.msh>")
		os.Exit(1)
	}

	file, err := msh.ParseFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("File:          %s\n", args[0])
	fmt.Printf("Byte order:    %v\n", file.ByteOrder)
	fmt.Printf("Header size:   %d\n", file.HeaderSize)
	fmt.Printf("Vertices:      %d (stride %d)\n", file.VertexCount(), file.VertexStride)
	if file.TextureName != "" {
		fmt.Printf("Texture:       %s\n", file.TextureName)
	} else {
		fmt.Printf("Texture:       (none)\n")
	}
	fmt.Println()
	fmt.Println("Attributes:")
	for _, attr := range file.Attributes {
		fmt.Printf("  %-10s %-8s location %d\n", attr.Semantic, attr.Format, attr.Location)
	}
}

func cmdDump(args []string) {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	limit := fs.Int("n", 0, "Limit output to N vertices (0 = all)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: mshtool dump [-n N] <file.msh>")
		os.Exit(1)
	}

	file, err := msh.ParseFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for i, v := range file.Vertices {
		if *limit > 0 && i >= *limit {
			fmt.Fprintf(os.Stderr, "(showing first %d of %d vertices)\n", *limit, file.VertexCount())
			break
		}
		fmt.Printf("%6d  pos(%g, %g, %g)  uv(%g, %g)  rgba(%g, %g, %g, %g)\n",
			i,
			v.Position.X, v.Position.Y, v.Position.Z,
			v.UV.X, v.UV.Y,
			v.Color.R, v.Color.G, v.Color.B, v.Color.A)
	}
}

func cmdConfig(args []string) {
	if len(args) < 1 || args[0] != "init" {
		fmt.Fprintln(os.Stderr, "Usage: mshtool config init [path]")
		os.Exit(1)
	}

	cfg := config.Default()

	if len(args) > 1 {
		if err := cfg.SaveTo(args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", args[1])
		return
	}

	if err := cfg.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
}
