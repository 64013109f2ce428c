package renderer

import "errors"

var (
	ErrInvalidConfig    = errors.New("renderer: invalid render configuration")
	ErrSceneNotDefined  = errors.New("renderer: no scene defined")
	ErrCameraNotDefined = errors.New("renderer: no camera defined")
	ErrInterrupted      = errors.New("renderer: interrupted while rendering")
)
