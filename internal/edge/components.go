package edge

import "github.com/UWCubeSat/found/internal/spatial"

// Criteria decides whether the pixel at the given row-major linear index
// belongs to the component being grown.
type Criteria func(index uint64, img *Image) bool

// Component is a maximal set of pixels connected through the W, NW, N, NE
// four-neighbourhood, all satisfying a shared Criteria.
type Component struct {
	Points       Points
	LowestPoint  uint64
	HighestPoint uint64
}

// Components is the set of components a single ConnectedComponentsAlgorithm
// pass produced.
type Components []Component

// neighborLabels returns the labels already assigned to the W, NW, N, NE
// neighbours of index that exist within the image, skipping whichever of
// those neighbours would fall outside the image's bounds.
func neighborLabels(index, width uint64, labels map[uint64]int) []int {
	var adjacent []int
	add := func(i uint64) {
		if l, ok := labels[i]; ok {
			adjacent = append(adjacent, l)
		}
	}
	x := index % width
	topRow := index < width
	leftCol := x == 0
	rightCol := x == width-1

	switch {
	case topRow:
		if !leftCol {
			add(index - 1)
		}
	case leftCol:
		add(index - width)
		add(index - width + 1)
	case rightCol:
		add(index - 1)
		add(index - width - 1)
		add(index - width)
	default:
		add(index - 1)
		add(index - width - 1)
		add(index - width)
		add(index - width + 1)
	}
	return adjacent
}

// ConnectedComponentsAlgorithm groups every pixel satisfying criteria into
// components, scanning in row-major order and assigning labels from the
// already-processed W, NW, N, NE neighbourhood. When a pixel touches
// several distinct labels, the smallest is canonical and the rest are
// recorded as equivalent to it; a second pass transitively resolves and
// merges those equivalencies into the lowest surviving label.
func ConnectedComponentsAlgorithm(img *Image, criteria Criteria) Components {
	width := uint64(img.Width)
	total := img.Len()

	components := map[int]*Component{}
	equivalencies := map[int]int{}
	labels := map[uint64]int{}
	nextLabel := 0

	for i := uint64(0); i < total; i++ {
		if !criteria(i, img) {
			continue
		}
		pixel := spatial.Vec2{X: float64(i % width), Y: float64(i / width)}
		adjacent := neighborLabels(i, width, labels)

		switch len(adjacent) {
		case 0:
			nextLabel++
			components[nextLabel] = &Component{Points: Points{pixel}, LowestPoint: i, HighestPoint: i}
			labels[i] = nextLabel
		case 1:
			c := components[adjacent[0]]
			c.Points = append(c.Points, pixel)
			c.HighestPoint = i
			labels[i] = adjacent[0]
		default:
			min := adjacent[0]
			for _, l := range adjacent[1:] {
				if l < min {
					min = l
				}
			}
			c := components[min]
			c.Points = append(c.Points, pixel)
			c.HighestPoint = i
			labels[i] = min
			for _, l := range adjacent {
				if l != min {
					equivalencies[l] = min
				}
			}
		}
	}

	resolve := func(label int) int {
		visited := map[int]bool{}
		for {
			next, ok := equivalencies[label]
			if !ok || visited[label] {
				return label
			}
			visited[label] = true
			label = next
		}
	}

	merged := make([]int, 0, len(equivalencies))
	for from := range equivalencies {
		merged = append(merged, from)
	}
	for _, from := range merged {
		src, ok := components[from]
		if !ok {
			continue
		}
		canonical := resolve(from)
		dst, ok := components[canonical]
		if !ok || dst == src {
			continue
		}
		dst.Points = append(dst.Points, src.Points...)
		if dst.LowestPoint > src.LowestPoint {
			dst.LowestPoint = src.LowestPoint
		}
		if dst.HighestPoint < src.HighestPoint {
			dst.HighestPoint = src.HighestPoint
		}
		delete(components, from)
	}

	result := make(Components, 0, len(components))
	for _, c := range components {
		result = append(result, *c)
	}
	return result
}
