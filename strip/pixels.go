package strip

import (
	"strconv"
	"strings"
	"sync"

	"github.com/battlesnakeio/placman/rules"
	"github.com/pkg/errors"
)

// Unmapped marks a segment that has no pixel.
const Unmapped = -1

// PixelMap maps a logical segment index to a physical pixel index on the
// strip.
type PixelMap []int

// IdentityMap maps segment i to pixel i.
func IdentityMap(n int) PixelMap {
	m := make(PixelMap, n)
	for i := range m {
		m[i] = i
	}
	return m
}

// ParsePixelMap reads a comma separated list of pixel indexes. "-" leaves a
// segment unmapped.
func ParsePixelMap(v string) (PixelMap, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, errors.New("strip: empty pixel map")
	}
	parts := strings.Split(v, ",")
	m := make(PixelMap, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "-" {
			m[i] = Unmapped
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, errors.Wrapf(err, "strip: pixel map entry %d", i)
		}
		m[i] = n
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate rejects negative pixel indexes and pixels used twice.
func (m PixelMap) Validate() error {
	seen := map[int]int{}
	for i, p := range m {
		if p == Unmapped {
			continue
		}
		if p < 0 {
			return errors.Errorf("strip: segment %d maps to negative pixel %d", i, p)
		}
		if prev, ok := seen[p]; ok {
			return errors.Errorf("strip: segments %d and %d both map to pixel %d", prev, i, p)
		}
		seen[p] = i
	}
	return nil
}

// Pixels is an addressable light strip.
type Pixels interface {
	NumPixels() int
	SetPixel(i int, c rules.RGB)
	Show() error
}

// StripRenderer writes frames onto a strip through a pixel map. Segments that
// map past the end of the strip are skipped.
type StripRenderer struct {
	Map    PixelMap
	Pixels Pixels
}

// Render implements Renderer.
func (r *StripRenderer) Render(f *Frame) error {
	n := r.Pixels.NumPixels()
	for _, s := range f.Segments {
		i := int(s.ID)
		if r.Map != nil {
			if i >= len(r.Map) {
				continue
			}
			i = r.Map[i]
		}
		if i == Unmapped || i >= n {
			continue
		}
		r.Pixels.SetPixel(i, s.Color)
	}
	return errors.Wrap(r.Pixels.Show(), "strip: show")
}

// Buffer is an in-memory strip.
type Buffer struct {
	sync.Mutex
	pixels []rules.RGB
	shows  int
}

// NewBuffer returns a dark strip of n pixels.
func NewBuffer(n int) *Buffer {
	return &Buffer{pixels: make([]rules.RGB, n)}
}

// NumPixels implements Pixels.
func (b *Buffer) NumPixels() int {
	return len(b.pixels)
}

// SetPixel implements Pixels.
func (b *Buffer) SetPixel(i int, c rules.RGB) {
	b.Lock()
	defer b.Unlock()
	b.pixels[i] = c
}

// Show implements Pixels.
func (b *Buffer) Show() error {
	b.Lock()
	defer b.Unlock()
	b.shows++
	return nil
}

// Pixel returns the color of pixel i.
func (b *Buffer) Pixel(i int) rules.RGB {
	b.Lock()
	defer b.Unlock()
	return b.pixels[i]
}

// Shows returns how many times the strip was latched.
func (b *Buffer) Shows() int {
	b.Lock()
	defer b.Unlock()
	return b.shows
}
