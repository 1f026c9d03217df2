package transform

// combinations yields every k-length subset of indices [0,n), each as a
// slice reused between calls — the callback must not retain it.
func combinations(n, k int, yield func([]int)) {
	if k > n || k <= 0 {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		yield(idx)

		i := k - 1
		for i >= 0 && idx[i] == i+n-k {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// permutations yields every ordering of items, each as a slice reused
// between calls — the callback must not retain it.
func permutations(items []int, yield func([]int)) {
	n := len(items)
	perm := append([]int(nil), items...)
	var rec func(k int)
	rec = func(k int) {
		if k == n {
			yield(perm)
			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			rec(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	rec(0)
}
