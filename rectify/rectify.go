// Package rectify resamples a located code into its canonical object
// space and groups the resulting clusters into glyph cells ready for
// classification against a glyph.Library.
package rectify

import (
	"github.com/symcode/symcode/config"
	"github.com/symcode/symcode/geom"
	"github.com/symcode/symcode/glyph"
)

// Image resamples raw into the object-space frame imageToObject (image
// space to object space) describes, leaving cfg.QuietZoneWidth
// unsampled around every edge, then binarizes the result with a global
// adaptive threshold. It returns ErrSingularTransform if imageToObject
// cannot be inverted for sampling.
func Image(raw geom.ColorImage, imageToObject geom.Homography, cfg config.Config) (geom.BinaryImage, error) {
	objectToImage, ok := imageToObject.Inverse()
	if !ok {
		return geom.BinaryImage{}, ErrSingularTransform
	}

	rectified := geom.NewColorImage(cfg.CodeWidth, cfg.CodeHeight)
	for y := cfg.QuietZoneWidth; y < cfg.CodeHeight-cfg.QuietZoneWidth; y++ {
		for x := cfg.QuietZoneWidth; x < cfg.CodeWidth-cfg.QuietZoneWidth; x++ {
			samplePoint := objectToImage.Forward(geom.PointF64{X: float64(x), Y: float64(y)})
			color, ok := raw.SampleBilinear(samplePoint)
			if !ok {
				color = geom.Color{R: 255, G: 255, B: 255, A: 255}
			}
			rectified.Set(x, y, color)
		}
	}
	return geom.GlobalAdaptiveThreshold(rectified), nil
}

// ValidClusterSize reports whether a cluster's bounding rect is sized
// to plausibly be a single glyph rather than noise or a run of merged
// glyphs. With a tolerance of one eighth of the configured cell size
// plus five pixels, each side must be at least the tolerance and at
// most the cell size plus the tolerance.
func ValidClusterSize(clusterBound geom.Rect, cfg config.Config) bool {
	heightTolerance := (cfg.SymbolHeight >> 3) + 5
	widthTolerance := (cfg.SymbolWidth >> 3) + 5
	w, h := clusterBound.Width(), clusterBound.Height()
	return w <= cfg.SymbolWidth+widthTolerance &&
		h <= cfg.SymbolHeight+heightTolerance &&
		w >= widthTolerance &&
		h >= heightTolerance
}

// GroupByGlyphRegion assigns each cluster rect to the first configured
// glyph anchor region it overlaps, in anchor order; a cluster matches at
// most one region. The returned slice has one entry per anchor, in the
// same order as cfg.GlyphAnchors.
func GroupByGlyphRegion(clusterRects []geom.Rect, cfg config.Config) [][]geom.Rect {
	consumed := make([]bool, len(clusterRects))
	grouped := make([][]geom.Rect, len(cfg.GlyphAnchors))

	for i, anchor := range cfg.GlyphAnchors {
		glyphRect := geom.NewRectXYWH(int(anchor.X), int(anchor.Y), cfg.SymbolWidth, cfg.SymbolHeight)
		for j, cr := range clusterRects {
			if consumed[j] {
				continue
			}
			if overlaps(glyphRect, cr) {
				grouped[i] = append(grouped[i], cr)
				consumed[j] = true
			}
		}
	}
	return grouped
}

func overlaps(a, b geom.Rect) bool {
	return !a.Intersect(b).IsEmpty()
}

// CentersOfMergedGroups merges each group's rects into one bounding
// rect and returns its center. A group with no clusters yields the zero
// point; callers distinguish that case by checking the group's length
// instead, since (0,0) is itself a valid center.
func CentersOfMergedGroups(groupedClusterRects [][]geom.Rect) []geom.PointI32 {
	centers := make([]geom.PointI32, len(groupedClusterRects))
	for i, group := range groupedClusterRects {
		if len(group) == 0 {
			continue
		}
		merged := group[0]
		for _, r := range group[1:] {
			merged = merged.Merge(r)
		}
		centers[i] = merged.Center().ToI32()
	}
	return centers
}

// CropAtCenter crops a symbolWidth x symbolHeight cell out of image
// centered on center.
func CropAtCenter(image geom.BinaryImage, center geom.PointI32, symbolWidth, symbolHeight int) geom.BinaryImage {
	topLeft := geom.PointI32{X: center.X - symbolWidth/2, Y: center.Y - symbolHeight/2}
	return image.Crop(geom.NewRectXYWH(topLeft.X, topLeft.Y, symbolWidth, symbolHeight))
}

// ReadGlyphs rectifies raw and reads one glyph.Label per configured
// glyph anchor, in anchor order. A glyph cell with no qualifying
// cluster, or whose crop is too sparse to be anything but background,
// reads as glyph.Invalid rather than being omitted — callers depend on
// a fixed-length result lining up with cfg.GlyphAnchors.
func ReadGlyphs(raw geom.ColorImage, imageToObject geom.Homography, library *glyph.Library, cfg config.Config) ([]glyph.Label, error) {
	rectified, err := Image(raw, imageToObject, cfg)
	if err != nil {
		return nil, err
	}

	var clusterRects []geom.Rect
	for _, cl := range geom.ClusterConnectedComponents(rectified) {
		if cl.Area() < cfg.AbsoluteEmptyClusterThreshold(cl.Bound.Width(), cl.Bound.Height()) {
			continue
		}
		if !ValidClusterSize(cl.Bound, cfg) {
			continue
		}
		clusterRects = append(clusterRects, cl.Bound)
	}

	grouped := GroupByGlyphRegion(clusterRects, cfg)
	centers := CentersOfMergedGroups(grouped)

	labels := make([]glyph.Label, len(cfg.GlyphAnchors))
	for i := range cfg.GlyphAnchors {
		if len(grouped[i]) == 0 {
			labels[i] = glyph.Invalid
			continue
		}
		crop := CropAtCenter(rectified, centers[i], cfg.SymbolWidth, cfg.SymbolHeight)
		if crop.Area() < cfg.AbsoluteEmptyClusterThreshold(crop.Width, crop.Height) {
			labels[i] = glyph.Invalid
			continue
		}
		labels[i] = library.FindMostSimilar(crop, cfg.MaxEncodingDifference)
	}
	return labels, nil
}
