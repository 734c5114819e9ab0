package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hexwire/regkit/addrmap"
	"github.com/hexwire/regkit/codec"
	"github.com/hexwire/regkit/regset"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// viewConfig carries the layout-geometry flags shared by the plain and
// interactive paths.
type viewConfig struct {
	container int
	cell      int
	gap       int
	unitBits  int
	bandUnits int
	showGaps  bool
}

func main() {
	var (
		defPath     = flag.String("def", "", "Path to register definition JSON")
		regKey      = flag.String("reg", "", "Register to inspect (name or id, default first)")
		rawLit      = flag.String("raw", "", "Raw value literal (0x1F, 0b1010, 42)")
		width       = flag.Int("width", 0, "Container width for grid fitting (0 = single row)")
		cell        = flag.Int("cell", 20, "Bit cell size for grid fitting")
		gap         = flag.Int("gap", 8, "Gap column size for grid fitting")
		showMap     = flag.Bool("map", false, "Show the address map and exit")
		band        = flag.Int("band", 4, "Address-map units per band")
		unit        = flag.Int("unit", 8, "Bits per address unit")
		gaps        = flag.Bool("gaps", false, "Show empty bands in the address map")
		list        = flag.Bool("list", false, "List registers and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *defPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: regview -def <file.json> [-reg name] [-raw 0x..] [-width N]")
		fmt.Fprintln(os.Stderr, "       regview -def <file.json> -list")
		fmt.Fprintln(os.Stderr, "       regview -def <file.json> -map [-band N] [-unit N] [-gaps]")
		fmt.Fprintln(os.Stderr, "       regview -def <file.json> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		regset.SetLogger(logger)
	}

	cfg := viewConfig{
		container: *width,
		cell:      *cell,
		gap:       *gap,
		unitBits:  *unit,
		bandUnits: *band,
		showGaps:  *gaps,
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*defPath, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*defPath, *regKey, *rawLit, cfg, *list, *showMap); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(defPath, regKey, rawLit string, cfg viewConfig, listOnly, showMap bool) error {
	defs, err := loadDefs(defPath)
	if err != nil {
		return err
	}
	set, err := regset.New(defs, regset.Options{UnitBits: cfg.unitBits, UnitsPerBand: cfg.bandUnits})
	if err != nil {
		return fmt.Errorf("load definitions: %w", err)
	}

	regs := set.Registers()
	fmt.Printf("Definitions: %s\n", defPath)
	fmt.Printf("Registers: %d\n", set.Len())

	for _, r := range regs {
		for _, w := range set.Report(r.ID).Warnings {
			fmt.Printf("warning: %v\n", w)
		}
	}

	if listOnly {
		fmt.Println()
		fmt.Print(renderRegisterList(regs))
		return nil
	}

	if showMap {
		geo := set.Options()
		opts := addrmap.Options{
			UnitBits:     geo.UnitBits,
			UnitsPerBand: geo.UnitsPerBand,
			ShowGaps:     cfg.showGaps,
		}
		fmt.Println()
		fmt.Print(renderMap(addrmap.Build(regs, opts), opts))
		for _, ov := range set.Overlaps() {
			fmt.Printf("overlap: %s and %s share units [%d, %d]\n",
				ov.A.Name, ov.B.Name, ov.FirstUnit, ov.LastUnit)
		}
		return nil
	}

	if len(regs) == 0 {
		return fmt.Errorf("no registers defined")
	}
	reg := &regs[0]
	if regKey != "" {
		if reg = set.Find(regKey); reg == nil {
			return fmt.Errorf("register %q not found (try -list)", regKey)
		}
	}

	if rawLit != "" {
		v, ok := codec.ParseInt(rawLit)
		if !ok {
			return fmt.Errorf("raw value %q is not an integer literal", rawLit)
		}
		if err := set.SetValue(reg.ID, v); err != nil {
			return err
		}
	}
	raw := set.Value(reg.ID)

	fmt.Printf("\n%s (%d bits) = %s\n\n", reg.Name, reg.Width, hexValue(raw, reg.Width))
	fmt.Print(renderGrid(reg, raw, cfg.container, cfg.cell, cfg.gap))
	fmt.Print(renderFields(reg, raw))
	return nil
}
