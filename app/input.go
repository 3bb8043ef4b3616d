package app

// IsHoveringUI is set while the mouse is over screen-space chrome (toolbar
// buttons, search box). It blocks canvas gestures and wheel zoom so a click
// on a button never also pans the scene or taps a node underneath.
var IsHoveringUI bool
