package rust

import (
	"path/filepath"

	"github.com/matzehuels/agentsgen/pkg/errors"
)

// Metadata is the subset of `cargo metadata --format-version=1` output that
// dependency lookup needs.
type Metadata struct {
	Packages []Package `json:"packages"`
	Resolve  *Resolve  `json:"resolve"`
}

// Package is one package known to the build.
type Package struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Version      string `json:"version"`
	ManifestPath string `json:"manifest_path"`
}

// Dir returns the package root, the directory holding its Cargo.toml.
func (p *Package) Dir() string {
	return filepath.Dir(p.ManifestPath)
}

// Resolve is the resolved dependency graph. Root is nil for virtual
// workspaces.
type Resolve struct {
	Root  *string `json:"root"`
	Nodes []Node  `json:"nodes"`
}

// Node is a package in the resolve graph with its outgoing edges.
type Node struct {
	ID   string    `json:"id"`
	Deps []NodeDep `json:"deps"`
}

// NodeDep is a dependency edge: the name it is declared under and the id of
// the package it resolved to.
type NodeDep struct {
	Name string `json:"name"`
	Pkg  string `json:"pkg"`
}

// Dependency returns the package that the root package's direct dependency
// called name resolved to. Each missing link in the chain is reported with
// its own error code.
func (m *Metadata) Dependency(name string) (*Package, error) {
	if m.Resolve == nil || m.Resolve.Root == nil || *m.Resolve.Root == "" {
		return nil, errors.New(errors.ErrCodeMissingResolve, "cargo metadata did not include a resolve root")
	}
	root := *m.Resolve.Root

	node := m.node(root)
	if node == nil {
		return nil, errors.New(errors.ErrCodeRootNodeNotFound, "cargo metadata did not include the root node: '%s'", root)
	}

	var edge *NodeDep
	for i := range node.Deps {
		if node.Deps[i].Name == name {
			edge = &node.Deps[i]
			break
		}
	}
	if edge == nil {
		return nil, errors.New(errors.ErrCodeDependencyNotFound, "cargo dependency not found: '%s'", name)
	}

	pkg := m.pkg(edge.Pkg)
	if pkg == nil {
		return nil, errors.New(errors.ErrCodePackageNotFound, "cargo package not found for dependency: '%s'", name)
	}
	return pkg, nil
}

func (m *Metadata) node(id string) *Node {
	for i := range m.Resolve.Nodes {
		if m.Resolve.Nodes[i].ID == id {
			return &m.Resolve.Nodes[i]
		}
	}
	return nil
}

func (m *Metadata) pkg(id string) *Package {
	for i := range m.Packages {
		if m.Packages[i].ID == id {
			return &m.Packages[i]
		}
	}
	return nil
}
