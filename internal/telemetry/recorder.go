package telemetry

import (
	"bytes"
	"fmt"
	"image/jpeg"

	"github.com/icza/mjpeg"

	"smoothlife/internal/core"
	"smoothlife/internal/render"
)

// Recorder encodes grayscale frames of the grid into an MJPEG AVI file.
type Recorder struct {
	writer mjpeg.AviWriter
	size   core.Size
	scale  int
	frames int
	buf    bytes.Buffer
	opts   jpeg.Options
}

// NewRecorder creates the AVI file at path. Each cell becomes a scale×scale
// block of pixels.
func NewRecorder(path string, size core.Size, scale, fps int) (*Recorder, error) {
	if scale <= 0 {
		scale = 1
	}
	if fps <= 0 {
		fps = 30
	}
	w, err := mjpeg.New(path, int32(size.W*scale), int32(size.H*scale), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("creating recorder: %w", err)
	}
	return &Recorder{writer: w, size: size, scale: scale, opts: jpeg.Options{Quality: 90}}, nil
}

// AddFrame encodes cells as the next video frame.
func (r *Recorder) AddFrame(cells []float64) error {
	img := render.GrayImage(r.size, cells, r.scale)
	r.buf.Reset()
	if err := jpeg.Encode(&r.buf, img, &r.opts); err != nil {
		return fmt.Errorf("encoding frame %d: %w", r.frames, err)
	}
	if err := r.writer.AddFrame(r.buf.Bytes()); err != nil {
		return fmt.Errorf("adding frame %d: %w", r.frames, err)
	}
	r.frames++
	return nil
}

// Frames returns how many frames were written.
func (r *Recorder) Frames() int { return r.frames }

// Close finalises the AVI index.
func (r *Recorder) Close() error {
	if r == nil || r.writer == nil {
		return nil
	}
	err := r.writer.Close()
	r.writer = nil
	return err
}
