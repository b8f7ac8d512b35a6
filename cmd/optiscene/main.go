// Command optiscene converts a Zemax sequential prescription into a
// positioned set of 3-D primitives, prints the resulting layout and
// optionally exports it as a binary STL file.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/akimov/optiscene/pkg/assembly"
	"github.com/akimov/optiscene/pkg/materials"
	"github.com/akimov/optiscene/pkg/scene"
	"github.com/akimov/optiscene/pkg/surface"
	"github.com/akimov/optiscene/pkg/zmx"
)

func main() {
	var (
		catalog   = flag.String("catalog", "", "path to a material catalog script")
		keepEmpty = flag.String("keep-empty", "never", "policy for surfaces without a material: never, image or always")
		transOnly = flag.Bool("transmission-only", false, "disable reflection on all dielectrics")
		reference = flag.Int("reference", -1, "re-base the assembly on the primitive with this index")
		stlPath   = flag.String("stl", "", "write the assembly as a binary STL file")
		cells     = flag.Int("cells", 128, "marching cubes resolution for STL export")
		verbose   = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: optiscene [flags] <prescription.zmx>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *catalog, *keepEmpty, *transOnly, *reference, *stlPath, *cells); err != nil {
		slog.Error("conversion failed", "error", err)
		os.Exit(1)
	}
}

func run(input, catalog, keepEmpty string, transOnly bool, reference int, stlPath string, cells int) error {
	policy, err := parseKeepPolicy(keepEmpty)
	if err != nil {
		return err
	}

	if catalog != "" {
		declared, err := materials.LoadScriptFile(catalog)
		if err != nil {
			return err
		}
		slog.Info("catalog loaded", "path", catalog, "materials", len(declared))
	}

	prescription, err := zmx.ReadFile(input)
	if err != nil {
		return err
	}
	slog.Info("prescription read",
		"path", input,
		"surfaces", len(prescription.Records),
		"wavelengths", len(prescription.Wavelengths))

	surfaces, err := surface.FromPrescription(prescription)
	if err != nil {
		return err
	}

	node, err := assembly.Build(surfaces, assembly.Options{
		KeepEmptySurfaces: policy,
		TransmissionOnly:  transOnly,
		Name:              input,
	})
	if err != nil {
		return err
	}

	if reference >= 0 {
		if err := assembly.SetGlobalReference(node, reference); err != nil {
			return err
		}
	}

	printSummary(node)

	if stlPath != "" {
		if err := writeSTL(stlPath, node, cells); err != nil {
			return err
		}
		slog.Info("stl written", "path", stlPath)
	}

	return nil
}

func parseKeepPolicy(s string) (assembly.KeepPolicy, error) {
	switch s {
	case "never":
		return assembly.KeepNever, nil
	case "image":
		return assembly.KeepImage, nil
	case "always":
		return assembly.KeepAlways, nil
	}
	return 0, fmt.Errorf("unknown keep-empty policy %q, want never, image or always", s)
}

func printSummary(node *scene.Node) {
	fmt.Printf("%d primitives:\n", node.Len())
	for i, p := range node.Children() {
		pos := p.Transform.MulPosition(v3.Vec{})
		name := p.Name
		if name == "" {
			name = "-"
		}
		fmt.Printf("  %2d  %-28s %-12s %-10s at (%.4g, %.4g, %.4g)\n",
			i, p.Kind, name, p.Material.Kind, pos.X, pos.Y, pos.Z)
	}
}
