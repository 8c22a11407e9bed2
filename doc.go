// Package bounce animates a tree of two-dimensional shapes bouncing inside a
// rectangular world and paints them through an abstract [Painter].
//
// # Quick start
//
// Build a [Model], attach shapes, and drive it from your frame loop with an
// [Animator]:
//
//	model := bounce.NewModel(500, 500)
//	box := bounce.NewRectangle(bounce.DefaultConfig().At(10, 10))
//	if err := model.Add(box, model.Root()); err != nil {
//		log.Fatal(err)
//	}
//	anim := bounce.NewAnimator(model)
//	// each frame:
//	anim.Update(dt)
//	anim.Paint(painter)
//
// Ready-made hosts live in the ebitenpaint (window) and termpaint (terminal)
// packages.
//
// # Shapes
//
// Every shape is a [Shape]. Shapes are created with typed constructors:
// [NewRectangle], [NewOval], [NewGem], [NewDynamicRectangle],
// [NewOvalAndRectangle], [NewImageRectangle] and [NewNesting]. Each step,
// [Shape.Move] advances a shape by its velocity and bounces it off the edges
// of its world; a corner hit counts as both a vertical and a horizontal
// collision. Some kinds change their appearance depending on which wall they
// hit.
//
// # Nesting
//
// Nesting shapes hold children. Children move inside their parent's box and
// are painted in the parent's local frame, so every coordinate a shape
// reports is relative to its immediate parent. A shape has at most one parent;
// [Shape.Add] and [Shape.Remove] keep both sides of the link in step and
// report violations as errors ([ErrInvalidAttachment], [ErrOutOfBounds],
// [ErrNotFound]).
//
// # Events
//
// [Model.Add] and [Model.Remove] notify registered [Listener]s with a
// [ModelEvent]. [TreeAdapter] turns those into tree view updates; the ecs
// module forwards them into a Donburi world.
//
// bounce is single-threaded. The one exception is [ImageLoader], which decodes
// images on background goroutines and hands the shapes back for the owning
// goroutine to attach.
package bounce
