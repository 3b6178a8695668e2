package geometry

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// ReadPointSet parses a point count followed by that many "x y" pairs.
// Tokens may be split across lines arbitrarily; anything after the last
// declared pair is ignored.
//
// Errors are wrapped around ErrMalformedInput (or ErrEmptyPointSet when
// the count is zero) so callers can match them with errors.Is.
//
// Complexity: O(n) time, O(n) space.
func ReadPointSet(r io.Reader) (PointSet, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	next := func(what string) (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, fmt.Errorf("%w: reading %s: %v", ErrMalformedInput, what, err)
			}

			return 0, fmt.Errorf("%w: missing %s", ErrMalformedInput, what)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("%w: %s %q is not an integer", ErrMalformedInput, what, sc.Text())
		}

		return v, nil
	}

	n, err := next("point count")
	if err != nil {
		return PointSet{}, err
	}
	if n < 0 {
		return PointSet{}, fmt.Errorf("%w: negative point count %d", ErrMalformedInput, n)
	}
	if n == 0 {
		return PointSet{}, ErrEmptyPointSet
	}

	pts := make([]Point, 0, n)
	var x, y int
	for i := 0; i < n; i++ {
		if x, err = next(fmt.Sprintf("x of point %d", i)); err != nil {
			return PointSet{}, err
		}
		if y, err = next(fmt.Sprintf("y of point %d", i)); err != nil {
			return PointSet{}, err
		}
		pts = append(pts, NewPoint(x, y))
	}

	return PointSet{pts: pts}, nil
}
