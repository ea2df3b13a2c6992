package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/spaghettifunk/kinetic/engine/core"
	"github.com/spaghettifunk/kinetic/engine/math"
)

func TestTriMeshTriangles(t *testing.T) {
	tests := []struct {
		name    string
		indices []uint32
		want    int
	}{
		{"empty", nil, 0},
		{"one triangle", []uint32{0, 1, 2}, 1},
		{"two triangles", []uint32{0, 1, 2, 2, 1, 3}, 2},
		{"trailing remainder dropped", []uint32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 3},
		{"too short for any triangle", []uint32{0, 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mesh := TriMesh{Indices: tt.indices}
			tris := mesh.Triangles()
			assert.Len(t, tris, tt.want)
			if tt.want > 0 {
				assert.Equal(t, [3]uint32{tt.indices[0], tt.indices[1], tt.indices[2]}, tris[0])
			}
		})
	}
}

func TestBezierSurfaceControlPoint(t *testing.T) {
	b := BezierSurface{
		ControlPoints: []mgl32.Vec3{
			{0, 0, 0}, {1, 0, 0},
			{0, 0, 1}, {1, 0, 1},
		},
		NUPoints: 2,
		NVPoints: 2,
	}
	assert.Equal(t, mgl32.Vec3{1, 0, 1}, b.ControlPoint(1, 1))
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, b.ControlPoint(0, 1))
}

func TestWorldIssuesStableDistinctIDs(t *testing.T) {
	world := NewWorld()

	a := world.AddBody(NewRigidBody(Ball{Radius: 1}))
	b := world.AddBody(NewRigidBody(Ball{Radius: 1}))

	assert.NotEqual(t, a.ID(), b.ID())

	// The token must not depend on mutable state.
	idBefore := a.ID()
	a.SetPosition(math.NewIsometry(mgl32.Vec3{5, 5, 5}, mgl32.QuatRotate(1.0, mgl32.Vec3{0, 1, 0})))
	a.SetMargin(0.5)
	assert.Equal(t, idBefore, a.ID())

	assert.Same(t, a, world.Body(a.ID()))
}

func TestWorldRemoveBody(t *testing.T) {
	world := NewWorld()
	a := world.AddBody(NewRigidBody(Ball{Radius: 1}))
	id := a.ID()

	world.RemoveBody(a)
	assert.Equal(t, core.InvalidID, a.ID())
	assert.Nil(t, world.Body(id))
	assert.Empty(t, world.Bodies())

	// Removing again is a no-op.
	world.RemoveBody(a)
	assert.Empty(t, world.Bodies())
}

func TestWorldNeverRecyclesTokens(t *testing.T) {
	world := NewWorld()
	a := world.AddBody(NewRigidBody(Ball{Radius: 1}))
	removedID := a.ID()
	world.RemoveBody(a)

	// A registry elsewhere may still hold a's token; the next body must not
	// inherit it.
	b := world.AddBody(NewRigidBody(Ball{Radius: 1}))
	assert.NotEqual(t, removedID, b.ID())
	assert.Nil(t, world.Body(removedID))
	assert.Same(t, b, world.Body(b.ID()))
}

func TestStaticBodyCannotMove(t *testing.T) {
	rb := NewStaticRigidBody(Plane{Normal: mgl32.Vec3{0, 1, 0}})
	assert.False(t, rb.CanMove())
	assert.True(t, NewRigidBody(Ball{Radius: 1}).CanMove())
}

func TestCenterOfMassFollowsPose(t *testing.T) {
	rb := NewRigidBody(Ball{Radius: 1})
	rb.SetLocalCenterOfMass(mgl32.Vec3{1, 0, 0})
	rb.SetPosition(math.IsometryFromTranslation(mgl32.Vec3{0, 5, 0}))

	assert.True(t, rb.CenterOfMass().ApproxEqualThreshold(mgl32.Vec3{1, 5, 0}, 1e-5))
}
