package util

// InPlaceFilter keeps the elements of s matching p, reusing the backing array
func InPlaceFilter[T any](s *[]T, p func(T) bool) {
	kept := 0
	for _, e := range *s {
		if p(e) {
			(*s)[kept] = e
			kept++
		}
	}

	var zero T
	for i := kept; i < len(*s); i++ {
		(*s)[i] = zero
	}

	*s = (*s)[:kept]
}
