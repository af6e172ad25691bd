// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg-trim/visual"
	"github.com/gogpu/gg/scene"
)

// cameraNodeName is the name of the transient node a camera attaches.
const cameraNodeName = "__trim_camera"

// Camera maps the content box of a retained visual onto a target.
//
// The camera looks at the centre of the content box and uses a uniform
// zoom of target height over content height, so a content box of the
// target's size is drawn at native resolution with an identity transform.
type Camera struct {
	node       *visual.Node
	zoom       float32
	clearColor gg.RGBA
	transform  scene.Affine
}

// NewCamera creates a detached camera for content of the given size.
// Fractional content sizes are floored.
func NewCamera(contentWidth, contentHeight float64, t Target) (*Camera, error) {
	cw := math.Floor(contentWidth)
	ch := math.Floor(contentHeight)
	if cw <= 0 || ch <= 0 {
		return nil, fmt.Errorf("%w: content %vx%v", ErrTargetSize, contentWidth, contentHeight)
	}
	tw := float32(t.Width())
	th := float32(t.Height())
	zoom := th / float32(ch)

	transform := scene.TranslateAffine(tw/2, th/2).
		Multiply(scene.ScaleAffine(zoom, zoom)).
		Multiply(scene.TranslateAffine(-float32(cw)/2, -float32(ch)/2))

	return &Camera{
		zoom:       zoom,
		clearColor: gg.Transparent,
		transform:  transform,
	}, nil
}

// AttachCamera creates a camera for n and attaches it to n as a child
// node. The returned release func detaches and destroys the camera node;
// it must be called exactly once, typically deferred right away.
func AttachCamera(n *visual.Node, t Target) (*Camera, func(), error) {
	if !n.Valid() {
		return nil, nil, visual.ErrDestroyed
	}
	w, h := n.Size()
	cam, err := NewCamera(w, h, t)
	if err != nil {
		return nil, nil, err
	}
	cam.node = visual.NewNode(cameraNodeName, 0, 0)
	if err := n.AddChild(cam.node); err != nil {
		return nil, nil, err
	}
	Logger().Debug("backend: camera attached", "node", n.Name(), "zoom", cam.zoom)

	release := func() {
		cam.node.Destroy()
		Logger().Debug("backend: camera released", "node", n.Name())
	}
	return cam, release, nil
}

// Zoom returns the uniform scale from content to target pixels.
func (c *Camera) Zoom() float32 {
	return c.zoom
}

// Transform returns the content-to-target transform.
func (c *Camera) Transform() scene.Affine {
	return c.transform
}

// ClearColor returns the color the target is cleared to before rendering.
func (c *Camera) ClearColor() gg.RGBA {
	return c.clearColor
}

// Record records r into s through the camera transform.
func (c *Camera) Record(s *scene.Scene, r visual.Recorder) {
	s.PushTransform(c.transform)
	r.Record(s)
	s.PopTransform()
}
