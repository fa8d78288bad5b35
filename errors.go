package keyframes

import "errors"

// Load-time validation errors. NewAnimation wraps them with the offending
// feature or group, so match with errors.Is.
var (
	ErrInvalidCanvas        = errors.New("keyframes: canvas width and height must be > 0")
	ErrInvalidFrameCount    = errors.New("keyframes: frame count must be > 0")
	ErrInvalidFrameRate     = errors.New("keyframes: frame rate must be > 0")
	ErrInvalidGroupID       = errors.New("keyframes: group id must be > 0")
	ErrDuplicateGroup       = errors.New("keyframes: duplicate group id")
	ErrUnknownParent        = errors.New("keyframes: parent group does not exist")
	ErrGroupCycle           = errors.New("keyframes: group parent chain forms a cycle")
	ErrUnknownGroup         = errors.New("keyframes: feature references unknown group")
	ErrPathTopology         = errors.New("keyframes: path keyframes differ in topology")
	ErrUnsupportedGradient  = errors.New("keyframes: unsupported gradient type")
	ErrMissingGradientTrack = errors.New("keyframes: gradient needs start and end color tracks")
	ErrEmptyTrack           = errors.New("keyframes: track has no keyframes")
	ErrTrackOrder           = errors.New("keyframes: keyframe frames must be strictly increasing")
	ErrEasingCount          = errors.New("keyframes: track needs one easing per segment")
	ErrNotSealed            = errors.New("keyframes: animation was not created by NewAnimation")
)
