package imaging

// binomialKernel is the 5-tap [1, 4, 6, 4, 1] low-pass used for each pyramid
// downsampling pass, paired with its offset from the convolution center.
var binomialKernel = [5]struct {
	offset int
	weight int
}{
	{-2, 1}, {-1, 4}, {0, 6}, {1, 4}, {2, 1},
}

const binomialDivisor = 16

// Pyramid is an ordered sequence of progressively half-sized grayscale
// images. Level 0 is the source image; each subsequent level is produced by
// a separable binomial blur followed by 2x decimation on both axes.
type Pyramid struct {
	Levels []*Image
}

// BuildPyramid constructs a pyramid from src with up to levels additional
// images beyond the original. Generation stops early if a level's width or
// height would become zero.
func BuildPyramid(src *Image, levels int) *Pyramid {
	p := &Pyramid{Levels: []*Image{src}}
	cur := src
	for i := 0; i < levels; i++ {
		dw, dh := cur.Width/2, cur.Height/2
		if dw == 0 || dh == 0 {
			break
		}
		next := downsample(cur, dw, dh)
		p.Levels = append(p.Levels, next)
		cur = next
	}
	return p
}

// downsample halves src along both axes using the binomial kernel, with
// clamp-to-edge handling of out-of-range taps.
func downsample(src *Image, dw, dh int) *Image {
	dst := NewImage(dw, dh)
	sw := src.Width

	row := make([]int, sw)
	for y := 0; y < dh; y++ {
		sy := 2 * y
		for sx := 0; sx < sw; sx++ {
			sum := 0
			for _, tap := range binomialKernel {
				sum += int(src.At(sx, sy+tap.offset)) * tap.weight
			}
			row[sx] = sum / binomialDivisor
		}

		for x := 0; x < dw; x++ {
			sxc := 2 * x
			sum := 0
			for _, tap := range binomialKernel {
				sum += rowAt(row, sxc+tap.offset) * tap.weight
			}
			dst.Set(x, y, uint8(sum/binomialDivisor))
		}
	}
	return dst
}

// rowAt reads the transient horizontal buffer with clamp-to-edge semantics.
func rowAt(row []int, i int) int {
	return row[clampInt(i, 0, len(row)-1)]
}
