// Package assets fetches and decodes the portfolio's glTF models before the
// scene is built. All models load concurrently; the first failure cancels the
// rest and aborts the whole load.
package assets

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/qmuntal/gltf"
	"golang.org/x/sync/errgroup"

	"scroll-portfolio/internal/download"
)

// ErrNoRootNode is returned for a model whose default scene has no nodes.
var ErrNoRootNode = errors.New("model has no root node")

// Source names one model. Path is relative to the loader's directory or an http(s) URL.
type Source struct {
	Name string
	Path string
}

// Model is a validated model ready for GPU upload.
type Model struct {
	Name   string
	Path   string // local file path
	Root   string // name of the first root node of the default scene
	Meshes int
}

// Progress is called after each model finishes loading, from the loading goroutine.
type Progress func(done, total int, name string)

// Loader loads models from Dir, caching remote ones in CacheDir.
type Loader struct {
	Dir      string
	CacheDir string
	Progress Progress
}

// LoadAll loads every source and returns the models in source order.
func (l *Loader) LoadAll(ctx context.Context, sources []Source) ([]Model, error) {
	models := make([]Model, len(sources))
	var done atomic.Int32
	g, ctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			m, err := l.load(ctx, src)
			if err != nil {
				return fmt.Errorf("assets: %s: %w", src.Name, err)
			}
			models[i] = m
			if l.Progress != nil {
				l.Progress(int(done.Add(1)), len(sources), src.Name)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return models, nil
}

func (l *Loader) load(ctx context.Context, src Source) (Model, error) {
	path := src.Path
	if download.IsRemote(path) {
		cache := l.CacheDir
		if cache == "" {
			cache = filepath.Join(l.Dir, "cache")
		}
		local, err := download.Download(ctx, path, cache)
		if err != nil {
			return Model{}, err
		}
		path = local
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(l.Dir, path)
	}
	if err := ctx.Err(); err != nil {
		return Model{}, err
	}
	doc, err := gltf.Open(path)
	if err != nil {
		return Model{}, err
	}
	root, err := firstRoot(doc)
	if err != nil {
		return Model{}, err
	}
	return Model{Name: src.Name, Path: path, Root: root.Name, Meshes: len(doc.Meshes)}, nil
}

// firstRoot returns the first node of the document's default scene, the
// object a scene graph loader would hand out as scene.children[0].
func firstRoot(doc *gltf.Document) (*gltf.Node, error) {
	if len(doc.Scenes) == 0 {
		return nil, ErrNoRootNode
	}
	s := 0
	if doc.Scene != nil {
		s = int(*doc.Scene)
	}
	if s < 0 || s >= len(doc.Scenes) || len(doc.Scenes[s].Nodes) == 0 {
		return nil, ErrNoRootNode
	}
	idx := int(doc.Scenes[s].Nodes[0])
	if idx < 0 || idx >= len(doc.Nodes) {
		return nil, fmt.Errorf("root node %d out of range", idx)
	}
	return doc.Nodes[idx], nil
}
