// SPDX-License-Identifier: MIT
// Package dfs provides helper functions used by cycle reconstruction:
// int-slice operations and Booth's minimal-rotation algorithm.
package dfs

// Reverse returns a new slice containing the elements of s in reverse order.
// Time Complexity: O(n).
func Reverse(s []int) []int {
	out := make([]int, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}

// Compare lexicographically compares two int slices a and b.
// Returns -1 if a < b, 0 if equal, +1 if a > b; a shorter prefix sorts first.
// Time Complexity: O(n).
func Compare(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	return 0
}

// MinimalRotation implements Booth's algorithm to find the lexicographically minimal rotation of s.
// It returns a new slice of length len(s) representing the minimal rotation in O(n) time.
// Algorithm overview:
// 1. Duplicate the sequence (doubled) to length 2n.
// 2. Maintain an array f of failure links initialized to -1.
// 3. Track candidate k = 0; for j from 1 to 2n-1, adjust k based on comparisons.
// 4. After scanning, extract the rotation starting at index k.
func MinimalRotation(s []int) []int {
	n := len(s)
	doubled := make([]int, 0, 2*n)
	doubled = append(append(doubled, s...), s...)
	f := make([]int, 2*n) // failure link array
	for i := range f {
		f[i] = -1
	}
	k := 0 // starting index of minimal rotation
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] { // mismatch or i == -1
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	res := make([]int, n)
	copy(res, doubled[k:k+n])

	return res
}
