package util

import (
	"fmt"
	"sort"
)

// Feature is a motif hit on a sequence, BED-like half open [start, end)
type Feature struct {
	chr   string
	start int
	end   int
	name  string
	score float64
}

func NewFeature(chr string, start, end int, name string, score float64) *Feature {
	return &Feature{
		chr:   chr,
		start: start,
		end:   end,
		name:  name,
		score: score,
	}
}

func (f *Feature) String() string {
	return fmt.Sprintf("%s\t%d\t%d\t%s\t%g", f.chr, f.start, f.end, f.name, f.score)
}

func (f *Feature) Start() int { return f.start }
func (f *Feature) End() int   { return f.end }

// MotifFeatures places each motif of a search result on its sequence
func MotifFeatures(names, motifs []string, positions []int, score float64) []*Feature {
	var features = make([]*Feature, 0, len(motifs))
	for i, m := range motifs {
		features = append(features, NewFeature(names[i], positions[i], positions[i]+len(m), m, score))
	}
	return features
}

// MergeIntervals 合并有交集的区间, intervals must share chr
func MergeIntervals(intervals []*Feature) []*Feature {
	if len(intervals) == 0 {
		return intervals
	}

	// 按起点排序
	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].start < intervals[j].start
	})

	merged := make([]*Feature, 0)
	current := *intervals[0]
	count := 1

	for _, interval := range intervals[1:] {
		if interval.start < current.end { // 有交集
			if interval.end > current.end {
				current.end = interval.end
			}
			if interval.score > current.score {
				current.score = interval.score
			}
			count++
		} else {
			merged = append(merged, mergedFeature(current, count))
			current = *interval
			count = 1
		}
	}

	// 添加最后一个区间
	merged = append(merged, mergedFeature(current, count))

	return merged
}

func mergedFeature(f Feature, count int) *Feature {
	if count > 1 {
		f.name = fmt.Sprintf("Merged:%d", count)
	}
	return &f
}

func SumLength(intervals []*Feature) int {
	var sum int
	for _, interval := range intervals {
		sum += interval.end - interval.start
	}
	return sum
}
