package main

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"

	"github.com/akimov/optiscene/pkg/scene"
)

// writeSTL renders every primitive of the node and writes the merged
// triangle soup as a binary STL file.
func writeSTL(path string, node *scene.Node, cells int) error {
	var triangles []*sdf.Triangle3
	for _, p := range node.Children() {
		triangles = append(triangles, scene.Triangles(p, cells)...)
	}

	if err := render.SaveSTL(path, triangles); err != nil {
		return fmt.Errorf("stl: %w", err)
	}
	return nil
}
