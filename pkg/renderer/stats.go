package renderer

import "time"

// FrameStats summarizes the work done for one frame
type FrameStats struct {
	Width       int           `json:"width"`       // Downsampled buffer width
	Height      int           `json:"height"`      // Downsampled buffer height
	PrimaryRays int           `json:"primaryRays"` // One per buffer sample
	Rects       int           `json:"rects"`       // Emitted draw commands (0 until compression runs)
	RenderTime  time.Duration `json:"renderTime"`
}
