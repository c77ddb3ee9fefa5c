// Package graphics provides the geometry, color, canvas and text measurement
// primitives shared by widgets and paint backends.
//
// Widgets paint through the [Canvas] interface and measure text through a
// [TextMeasurer]. [PictureRecorder] captures paint output as a [DisplayList]
// that can be replayed onto another canvas or inspected in tests.
package graphics
