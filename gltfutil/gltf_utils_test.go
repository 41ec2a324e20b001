package gltfutil

import (
	"testing"

	"github.com/binzume/quaternion/geom"
	"github.com/cockroachdb/errors"
	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/require"
)

func testDocument() *gltf.Document {
	hips := &gltf.Node{Name: "Hips"}
	hips.Rotation[0] = 0.5
	hips.Rotation[1] = -0.5
	hips.Rotation[2] = 0.5
	hips.Rotation[3] = -0.5
	spine := &gltf.Node{Name: "Spine"}
	spine.Rotation[3] = 1
	return &gltf.Document{Nodes: []*gltf.Node{hips, spine}}
}

func TestNodeRotation(t *testing.T) {
	doc := testDocument()

	q, err := NodeRotation(doc, "Hips")
	require.NoError(t, err)
	require.True(t, geom.New(-0.5, 0.5, -0.5, 0.5).Equal(q), q)

	q, err = NodeRotation(doc, "Spine")
	require.NoError(t, err)
	require.True(t, geom.New(1, 0, 0, 0).Equal(q), q)

	_, err = NodeRotation(doc, "Head")
	require.True(t, errors.Is(err, ErrNodeNotFound))
}

func TestNodeRotations(t *testing.T) {
	rots := NodeRotations(testDocument())
	require.Len(t, rots, 2)
	require.Equal(t, "Hips", rots[0].Name)
	require.Equal(t, "Spine", rots[1].Name)
	require.InDelta(t, 1.0, rots[0].Rotation.Norm(), 1e-9)
	require.Empty(t, NodeRotations(&gltf.Document{}))
}
