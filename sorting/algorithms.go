package sorting

// Quicksort with Hoare partitioning around the middle element
func Quicksort(a Array) {
	quicksort(a, 0, a.Len()-1)
}

func quicksort(a Array, left, right int) {
	if left >= right {
		return
	}
	p := partition(a, left, right)
	quicksort(a, left, p)
	quicksort(a, p+1, right)
}

func partition(a Array, left, right int) int {
	pivot := a.Get(left + (right-left)/2)
	for left <= right {
		for a.Get(left) < pivot {
			left++
		}
		for a.Get(right) > pivot {
			right--
		}
		if left >= right {
			break
		}
		swap(a, left, right)
		left++
		right--
	}
	return right
}

// BubbleSort with the shrinking unsorted tail
func BubbleSort(a Array) {
	n := a.Len()
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			if a.Get(j) > a.Get(j+1) {
				swap(a, j, j+1)
			}
		}
	}
}

// MergeSort is a top-down merge sort merging in place by shifting, so every
// move is a visible write into the array itself
func MergeSort(a Array) {
	mergeSort(a, 0, a.Len()-1)
}

func mergeSort(a Array, left, right int) {
	if left >= right {
		return
	}
	mid := left + (right-left)/2
	mergeSort(a, left, mid)
	mergeSort(a, mid+1, right)
	merge(a, left, mid, right)
}

func merge(a Array, left, mid, end int) {
	right := mid + 1

	// Halves already in order
	if a.Get(mid) <= a.Get(right) {
		return
	}

	for left <= mid && right <= end {
		if a.Get(left) <= a.Get(right) {
			left++
			continue
		}

		// Rotate a[right] down to left
		value := a.Get(right)
		for i := right; i != left; i-- {
			a.Set(i, a.Get(i-1))
		}
		a.Set(left, value)

		left++
		mid++
		right++
	}
}

// CocktailShakerSort alternates forward and backward bubble passes
func CocktailShakerSort(a Array) {
	left, right := 0, a.Len()-1
	for left <= right {
		for i := left; i < right; i++ {
			if a.Get(i) > a.Get(i+1) {
				swap(a, i, i+1)
			}
		}
		right--

		for i := right; i > left; i-- {
			if a.Get(i-1) > a.Get(i) {
				swap(a, i, i-1)
			}
		}
		left++
	}
}

// RadixSort is an LSD base-10 radix sort for non-negative values
func RadixSort(a Array) {
	n := a.Len()
	if n == 0 {
		return
	}
	maxValue := a.Get(0)
	for i := 1; i < n; i++ {
		maxValue = max(maxValue, a.Get(i))
	}

	output := make([]int, n)
	for place := 1; maxValue/place > 0; place *= 10 {
		countingSort(a, output, place)
	}
}

// countingSort orders a by the digit at place; output is scratch space of len a.Len()
func countingSort(a Array, output []int, place int) {
	var count [10]int
	n := a.Len()

	for i := 0; i < n; i++ {
		count[(a.Get(i)/place)%10]++
	}
	for d := 1; d < 10; d++ {
		count[d] += count[d-1]
	}

	// Backwards keeps equal digits in order
	for i := n - 1; i >= 0; i-- {
		v := a.Get(i)
		d := (v / place) % 10
		count[d]--
		output[count[d]] = v
	}

	for i := 0; i < n; i++ {
		a.Set(i, output[i])
	}
}
