// internal/assets/asset.go
package assets

import (
	"context"
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
)

// Asset is a decoded body mesh. The engine treats it as opaque apart from
// the root nodes it inserts and the local path the renderer uploads from.
type Asset struct {
	URI       string
	LocalPath string
	Document  *gltf.Document
	Roots     []int // node indices of the displayed scene
	Min, Max  mgl32.Vec3

	cleanup func()
}

// Release drops the document and removes any temporary file. Safe to call
// more than once.
func (a *Asset) Release() {
	if a == nil {
		return
	}
	if a.cleanup != nil {
		a.cleanup()
		a.cleanup = nil
	}
	a.Document = nil
}

// Counts summarizes the scene graph.
func (a *Asset) Counts() (nodes, meshes, materials int) {
	if a.Document == nil {
		return 0, 0, 0
	}
	return len(a.Document.Nodes), len(a.Document.Meshes), len(a.Document.Materials)
}

// Open fetches and decodes one asset synchronously.
func Open(ctx context.Context, f Fetcher, uri string) (*Asset, error) {
	local, cleanup, err := f.Fetch(ctx, uri)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			return nil, err
		}
		return nil, &LoadError{Kind: ErrFetch, URI: uri, Err: err}
	}
	fail := func(err error) (*Asset, error) {
		if cleanup != nil {
			cleanup()
		}
		return nil, &LoadError{Kind: ErrDecode, URI: uri, Err: err}
	}

	doc, err := gltf.Open(local)
	if err != nil {
		return fail(err)
	}
	roots, err := rootNodes(doc)
	if err != nil {
		return fail(err)
	}
	a := &Asset{
		URI:       uri,
		LocalPath: local,
		Document:  doc,
		Roots:     roots,
		cleanup:   cleanup,
	}
	a.Min, a.Max = bounds(doc, roots)
	return a, nil
}

func rootNodes(doc *gltf.Document) ([]int, error) {
	scene := 0
	if doc.Scene != nil {
		scene = *doc.Scene
	}
	if scene >= 0 && scene < len(doc.Scenes) && len(doc.Scenes[scene].Nodes) > 0 {
		return append([]int(nil), doc.Scenes[scene].Nodes...), nil
	}
	return nil, errors.New("no scene with root nodes")
}

// bounds is the union of POSITION accessor extents of every mesh reachable
// from roots. Node transforms are not applied.
func bounds(doc *gltf.Document, roots []int) (mgl32.Vec3, mgl32.Vec3) {
	inf := float32(math.Inf(1))
	lo := mgl32.Vec3{inf, inf, inf}
	hi := mgl32.Vec3{-inf, -inf, -inf}
	found := false

	seen := make(map[int]bool)
	stack := append([]int(nil), roots...)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n < 0 || n >= len(doc.Nodes) || seen[n] {
			continue
		}
		seen[n] = true
		node := doc.Nodes[n]
		stack = append(stack, node.Children...)
		if node.Mesh == nil || *node.Mesh >= len(doc.Meshes) {
			continue
		}
		for _, prim := range doc.Meshes[*node.Mesh].Primitives {
			idx, ok := prim.Attributes[gltf.POSITION]
			if !ok || idx >= len(doc.Accessors) {
				continue
			}
			acc := doc.Accessors[idx]
			if extend(&lo, &hi, acc.Min, acc.Max) {
				found = true
			}
		}
	}
	if !found {
		return mgl32.Vec3{}, mgl32.Vec3{}
	}
	return lo, hi
}

func extend[T float32 | float64](lo, hi *mgl32.Vec3, accMin, accMax []T) bool {
	if len(accMin) < 3 || len(accMax) < 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		lo[i] = float32(math.Min(float64(lo[i]), float64(accMin[i])))
		hi[i] = float32(math.Max(float64(hi[i]), float64(accMax[i])))
	}
	return true
}
