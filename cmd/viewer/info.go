// cmd/viewer/info.go
package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"go-anatomy-viewer/internal/assets"
	"go-anatomy-viewer/internal/defs"

	"github.com/spf13/cobra"
)

func newHotspotsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hotspots",
		Short: "List the hotspot table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, _, err := setup()
			if err != nil {
				return err
			}
			hotspotDefs, err := defs.LoadHotspotDefinitions(settings.HotspotsFile)
			if err != nil {
				return err
			}
			return printHotspots(cmd.OutOrStdout(), hotspotDefs)
		},
	}
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <model.glb|model.gltf|url>",
		Short: "Display body mesh information",
		Long:  "Fetch and decode a glTF asset the way the viewer does and print its scene summary and bounds.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printInfo(cmd.Context(), cmd.OutOrStdout(), assets.DefaultFetcher{}, args[0])
		},
	}
}

func printHotspots(w io.Writer, hotspotDefs []defs.HotspotDefinition) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tLABEL\tX\tY\tZ")
	for i, d := range hotspotDefs {
		fmt.Fprintf(tw, "%d\t%s\t%.3f\t%.3f\t%.3f\n", i, d.Label, d.Position[0], d.Position[1], d.Position[2])
	}
	return tw.Flush()
}

func printInfo(ctx context.Context, w io.Writer, f assets.Fetcher, uri string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := assets.Open(ctx, f, uri)
	if err != nil {
		return err
	}
	defer a.Release()

	nodes, meshes, materials := a.Counts()
	size := a.Max.Sub(a.Min)
	fmt.Fprintf(w, "File:       %s\n", filepath.Base(uri))
	fmt.Fprintf(w, "Format:     %s\n", strings.ToUpper(strings.TrimPrefix(filepath.Ext(uri), ".")))
	fmt.Fprintf(w, "Roots:      %v\n", a.Roots)
	fmt.Fprintf(w, "Nodes:      %d\n", nodes)
	fmt.Fprintf(w, "Meshes:     %d\n", meshes)
	fmt.Fprintf(w, "Materials:  %d\n", materials)
	fmt.Fprintf(w, "Bounds:     (%.3f, %.3f, %.3f) - (%.3f, %.3f, %.3f)\n",
		a.Min.X(), a.Min.Y(), a.Min.Z(), a.Max.X(), a.Max.Y(), a.Max.Z())
	fmt.Fprintf(w, "Size:       %.3f x %.3f x %.3f\n", size.X(), size.Y(), size.Z())
	return nil
}
