package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/BeatGlow/volume"
	"github.com/BeatGlow/volume/draw"
	"github.com/BeatGlow/volume/preview"
)

func main() {
	configFlag := flag.String("config", "", "TOML configuration file")
	widthFlag := flag.Int("width", 0, "Volume width (default: from config)")
	heightFlag := flag.Int("height", 0, "Volume height (default: from config)")
	lengthFlag := flag.Int("length", 0, "Number of planes (default: from config)")
	depthFlag := flag.String("depth", "", "Voxel depth: binary, gray or int32 (default: from config)")
	gridFlag := flag.String("grid", "", "Grid: cubic or hexagonal (default: from config)")
	dirFlag := flag.Uint("dir", 18, "Shift direction (cubic: 1/3/5/7 north/east/south/west, 9 previous plane, 18 next plane)")
	amplitudeFlag := flag.Int("amplitude", 1, "Shift amplitude")
	fillFlag := flag.Uint("fill", 0, "Fill value for voxels shifted in from outside")
	edgeFlag := flag.Uint("edge", 1, "Edge value")
	sheetFlag := flag.String("sheet", "", "Write a PNG contact sheet of the shifted volume")
	scaleFlag := flag.Int("scale", 1, "Contact sheet pixels per voxel")
	logFlag := flag.String("log", "", "Log file")
	verboseFlag := flag.Bool("v", false, "Verbose logging")
	flag.Parse()

	config := volume.DefaultConfig()
	if *configFlag != "" {
		var err error
		if config, err = volume.LoadConfig(*configFlag); err != nil {
			fatal(err)
		}
		fmt.Printf("using configuration: %s\n", *configFlag)
	}
	if *widthFlag > 0 {
		config.Volume.Width = *widthFlag
	}
	if *heightFlag > 0 {
		config.Volume.Height = *heightFlag
	}
	if *lengthFlag > 0 {
		config.Volume.Length = *lengthFlag
	}
	if *depthFlag != "" {
		if err := config.Volume.Depth.UnmarshalText([]byte(*depthFlag)); err != nil {
			fatal(err)
		}
	}
	if *gridFlag != "" {
		if err := config.Volume.Grid.UnmarshalText([]byte(*gridFlag)); err != nil {
			fatal(err)
		}
	}
	if *logFlag != "" {
		config.Log.Logfile = *logFlag
	}
	if *verboseFlag {
		volume.SetLogMode(volume.DebugMode)
	}
	if err := config.Apply(); err != nil {
		fatal(err)
	}

	src, err := volume.NewDefault(config.Volume.Depth)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("using volume: %s (%s voxels)\n", src, humanize.Comma(int64(src.Width()*src.Height()*src.Length())))
	fmt.Printf("using grid: %s\n", volume.DefaultGrid())

	report("empty after create", src)
	synthesize(src)
	report("empty after synthesize", src)

	edged := src.Clone()
	if err = volume.DrawEdge(edged, uint32(*edgeFlag)); err != nil {
		fatal(err)
	}
	fmt.Printf("edge drawn with value %d, volume sum %s -> %s\n", *edgeFlag,
		humanize.Comma(int64(src.Volume())), humanize.Comma(int64(edged.Volume())))

	var (
		grid    = volume.DefaultGrid()
		dir     = volume.Direction(*dirFlag)
		shifted *volume.Image
	)
	if shifted, err = volume.New(src.Width(), src.Height(), src.Length(), src.Depth()); err != nil {
		fatal(err)
	}
	if err = volume.Shift(src, shifted, dir, *amplitudeFlag, uint32(*fillFlag), grid); err != nil {
		fatal(err)
	}
	d, _ := grid.Displacement(dir, *amplitudeFlag)
	fmt.Printf("shifted direction %d x%d on %s grid, displacement %s\n", dir, *amplitudeFlag, grid, d)

	diff, err := volume.New(src.Width(), src.Height(), src.Length(), src.Depth())
	if err != nil {
		fatal(err)
	}
	first, err := volume.Compare(src, shifted, diff)
	if err != nil {
		fatal(err)
	}
	if first.Z < 0 {
		fmt.Println("compare: volumes are equal")
	} else {
		fmt.Printf("compare: first difference at %s, discrepancy sum %s\n", first, humanize.Comma(int64(diff.Volume())))
	}

	if *sheetFlag != "" {
		o := preview.DefaultOptions
		o.Scale = *scaleFlag
		sheet, err := preview.Render(shifted, &o)
		if err != nil {
			fatal(err)
		}
		if err = writePNG(*sheetFlag, sheet); err != nil {
			fatal(err)
		}
		fmt.Printf("contact sheet %s written to %s\n", sheet.Bounds().Size(), *sheetFlag)
	}
}

// synthesize draws a diagonal line through every plane, moving one row per plane.
func synthesize(v *volume.Image) {
	var (
		w = v.Width()
		h = v.Height()
	)
	for z, p := range v.Planes() {
		row := z % h
		draw.LineValue(p, image.Pt(0, row), image.Pt(w-1, h-1-row), uint32(z)%v.Depth().MaxValue()+1)
	}
}

func report(what string, v *volume.Image) {
	empty, err := volume.IsEmpty(v)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("%s: %t\n", what, empty)
}

func writePNG(name string, img image.Image) error {
	if !strings.HasSuffix(strings.ToLower(name), ".png") {
		name += ".png"
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
