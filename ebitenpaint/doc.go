// Package ebitenpaint paints bounce models with Ebitengine.
//
// [Painter] implements [bounce.Painter] on top of an *ebiten.Image, and [Run]
// opens a window that animates a [bounce.Animator]:
//
//	m := bounce.NewModel(640, 480)
//	m.Add(bounce.NewOval(bounce.DefaultConfig()), m.Root())
//	if err := ebitenpaint.Run(bounce.NewAnimator(m), ebitenpaint.RunConfig{
//		Title:   "bounce",
//		ShowFPS: true,
//	}); err != nil {
//		log.Fatal(err)
//	}
//
// While running, F12 saves a screenshot and Space pauses or resumes the
// animation. A JSON script loaded with [LoadScript] can drive the same actions
// unattended.
package ebitenpaint
