// Package volprofile bins traded volume by closing price to find the
// point of control, the value area, and high-volume nodes.
package volprofile

import (
	"sort"

	"TradePulse/internal/model"
	"TradePulse/internal/series"
)

// BinCount partitions the window's price range into this many
// equal-width buckets.
const BinCount = 10

// valueAreaShare is the fraction of total volume the value area covers.
const valueAreaShare = 0.70

// hvnMultiple marks bins above this multiple of the mean bin volume as
// high-volume nodes.
const hvnMultiple = 1.5

// Build accumulates each bar's volume into the bin containing its close
// and derives the profile statistics. Returns nil when there is nothing
// to bin.
func Build(closes, volumes []float64) *model.VolumeProfile {
	if len(closes) == 0 || len(volumes) != len(closes) {
		return nil
	}

	lo, _ := series.Lowest(closes, len(closes))
	hi, _ := series.Highest(closes, len(closes))
	width := (hi - lo) / BinCount

	bins := make([]model.VolumeBin, BinCount)
	for i := range bins {
		bins[i].Low = lo + width*float64(i)
		bins[i].High = lo + width*float64(i+1)
	}

	total := 0.0
	for i, c := range closes {
		idx := 0
		if width > 0 {
			idx = int((c - lo) / width)
			if idx >= BinCount {
				idx = BinCount - 1 // the top close lands in the last bin
			}
		}
		bins[idx].Volume += volumes[i]
		total += volumes[i]
	}
	if total == 0 {
		return nil
	}

	poc := bins[0]
	for _, b := range bins[1:] {
		if b.Volume > poc.Volume {
			poc = b
		}
	}

	// Value area: take the highest-volume bins until 70% of total volume
	// is covered, then report the price span they jointly occupy.
	ordered := make([]model.VolumeBin, len(bins))
	copy(ordered, bins)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Volume > ordered[j].Volume })

	vaLow, vaHigh := poc.Low, poc.High
	covered := 0.0
	for _, b := range ordered {
		covered += b.Volume
		if b.Low < vaLow {
			vaLow = b.Low
		}
		if b.High > vaHigh {
			vaHigh = b.High
		}
		if covered >= total*valueAreaShare {
			break
		}
	}

	meanVol := total / BinCount
	var nodes []model.VolumeBin
	for _, b := range bins {
		if b.Volume > meanVol*hvnMultiple {
			nodes = append(nodes, b)
		}
	}

	return &model.VolumeProfile{
		Bins:            bins,
		POC:             poc,
		ValueAreaLow:    vaLow,
		ValueAreaHigh:   vaHigh,
		HighVolumeNodes: nodes,
	}
}
