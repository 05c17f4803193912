package volume

// This file declares the grid dimensions, the fragment and affinity volume
// types, and the sentinel errors of the package.

import "errors"

// Sentinel errors for volume operations.
var (
	// ErrEmptyVolume indicates a dimension is not positive.
	ErrEmptyVolume = errors.New("volume: all dimensions must be positive")
	// ErrShapeMismatch indicates a buffer length does not match its dimensions.
	ErrShapeMismatch = errors.New("volume: buffer length does not match dimensions")
	// ErrBadChannels indicates an affinity buffer whose channel count is not
	// NumChannels.
	ErrBadChannels = errors.New("volume: affinity buffer must hold exactly 3 channels")
	// ErrBadAffinity indicates an affinity value outside [0,1].
	ErrBadAffinity = errors.New("volume: affinity outside [0,1]")
	// ErrLabelRange indicates a fragment label outside the graph's node range.
	ErrLabelRange = errors.New("volume: fragment label exceeds graph nodes")
)

// NumChannels is the number of affinity channels: one per positive axis
// direction +Z, +Y, +X.
const NumChannels = 3

// Affinity channel indices, matching the +Z, +Y, +X convention of the
// affinity volume layout aff[c][z][y][x].
const (
	ChannelZ = iota
	ChannelY
	ChannelX
)

// Dims describes a W×H×D voxel grid.
type Dims struct {
	// W, H, D are the extents along x, y, z.
	W, H, D int
}

// Validate reports ErrEmptyVolume unless all extents are positive.
func (d Dims) Validate() error {
	if d.W <= 0 || d.H <= 0 || d.D <= 0 {
		return ErrEmptyVolume
	}
	return nil
}

// Len returns the number of voxels W·H·D.
func (d Dims) Len() int { return d.W * d.H * d.D }

// InBounds reports whether (x,y,z) lies within the grid.
// Complexity: O(1).
func (d Dims) InBounds(x, y, z int) bool {
	return x >= 0 && x < d.W && y >= 0 && y < d.H && z >= 0 && z < d.D
}

// Index maps (x,y,z) to a flat row-major index: (z·H + y)·W + x.
// Complexity: O(1).
func (d Dims) Index(x, y, z int) int { return (z*d.H+y)*d.W + x }

// Coordinate converts a flat index back to (x,y,z).
// Complexity: O(1).
func (d Dims) Coordinate(i int) (x, y, z int) {
	x = i % d.W
	y = (i / d.W) % d.H
	z = i / (d.W * d.H)
	return x, y, z
}

// Fragments is a 3D volume of region labels over a flat buffer.
type Fragments struct {
	Dims
	// Labels holds one label per voxel, row-major per Dims.Index.
	Labels []uint64
}

// NewFragments wraps a label buffer (no copy). Returns ErrEmptyVolume or
// ErrShapeMismatch on invalid input.
func NewFragments(d Dims, labels []uint64) (*Fragments, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if len(labels) != d.Len() {
		return nil, ErrShapeMismatch
	}
	return &Fragments{Dims: d, Labels: labels}, nil
}

// At returns the label at (x,y,z).
func (f *Fragments) At(x, y, z int) uint64 { return f.Labels[f.Index(x, y, z)] }

// MaxLabel returns the largest label in the volume.
// Complexity: O(voxels).
func (f *Fragments) MaxLabel() uint64 {
	var max uint64
	for _, l := range f.Labels {
		if l > max {
			max = l
		}
	}
	return max
}

// Clone deep-copies the volume, so one threshold's segmentation can seed
// the next without aliasing.
func (f *Fragments) Clone() *Fragments {
	labels := make([]uint64, len(f.Labels))
	copy(labels, f.Labels)
	return &Fragments{Dims: f.Dims, Labels: labels}
}

// Affinities is a 3-channel 3D volume of edge affinities over a flat
// buffer laid out aff[c][z][y][x].
type Affinities struct {
	Dims
	// Values holds NumChannels·W·H·D affinities.
	Values []float64
}

// NewAffinities wraps an affinity buffer (no copy). Returns ErrEmptyVolume,
// ErrBadChannels (a whole number of channels, but not NumChannels),
// ErrShapeMismatch (not a whole number of channels at all), or
// ErrBadAffinity on invalid input.
func NewAffinities(d Dims, values []float64) (*Affinities, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if len(values) != NumChannels*d.Len() {
		if len(values)%d.Len() == 0 {
			return nil, ErrBadChannels
		}
		return nil, ErrShapeMismatch
	}
	for _, v := range values {
		if v < 0 || v > 1 {
			return nil, ErrBadAffinity
		}
	}
	return &Affinities{Dims: d, Values: values}, nil
}

// At returns the affinity of channel c at (x,y,z): the edge between the
// voxel and its predecessor along the channel's axis.
func (a *Affinities) At(c, x, y, z int) float64 {
	return a.Values[c*a.Len()+a.Index(x, y, z)]
}
