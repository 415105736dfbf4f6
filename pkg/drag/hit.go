package drag

import (
	"gradient-frame/pkg/colorstop"
	"gradient-frame/pkg/geometry"
)

// Region is a circular hit area in container-local coordinates.
type Region struct {
	Target Target
	Center geometry.Point
	Radius float64
}

// Contains reports whether p lies inside the region.
func (r Region) Contains(p geometry.Point) bool {
	return p.DistanceSq(r.Center) <= r.Radius*r.Radius
}

// Regions lays out the hit areas in paint order: start handle, end handle,
// then every stop in render order at its position along seg. Later regions
// are drawn above earlier ones.
func Regions(seg geometry.Segment, stops colorstop.Collection, radius float64) []Region {
	sorted := stops.Stops()
	out := make([]Region, 0, len(sorted)+2)
	out = append(out,
		Region{Target: StartHandle(), Center: seg.Start, Radius: radius},
		Region{Target: EndHandle(), Center: seg.End, Radius: radius},
	)
	for _, s := range sorted {
		out = append(out, Region{
			Target: Stop(s.ID),
			Center: seg.At(s.Offset / 100),
			Radius: radius,
		})
	}
	return out
}

// Pick returns the topmost region under local that the controller lets
// through. Masked regions are transparent to the pointer, so a region
// below them can still be picked.
func (c *Controller) Pick(regions []Region, local geometry.Point) (Target, bool) {
	for i := len(regions) - 1; i >= 0; i-- {
		r := regions[i]
		if !c.Hittable(r.Target) {
			continue
		}
		if r.Contains(local) {
			return r.Target, true
		}
	}
	return None(), false
}
