package gltfutil

import (
	"github.com/binzume/quaternion/geom"
	"github.com/cockroachdb/errors"
	"github.com/qmuntal/gltf"
)

var ErrNodeNotFound = errors.New("node not found")

type NamedRotation struct {
	Name     string
	Rotation geom.Quaternion
}

func Load(path string) (*gltf.Document, error) {
	return gltf.Open(path)
}

// nodeRotation maps glTF [x, y, z, w] to w+xi+yj+zk.
func nodeRotation(node *gltf.Node) geom.Quaternion {
	r := node.Rotation
	return geom.New(float64(r[3]), float64(r[0]), float64(r[1]), float64(r[2]))
}

// NodeRotation returns the rotation of the first node named name.
func NodeRotation(doc *gltf.Document, name string) (geom.Quaternion, error) {
	for _, node := range doc.Nodes {
		if node.Name == name {
			return nodeRotation(node), nil
		}
	}
	return geom.Quaternion{}, errors.Wrapf(ErrNodeNotFound, "%q", name)
}

func NodeRotations(doc *gltf.Document) []NamedRotation {
	var rots []NamedRotation
	for _, node := range doc.Nodes {
		rots = append(rots, NamedRotation{Name: node.Name, Rotation: nodeRotation(node)})
	}
	return rots
}
