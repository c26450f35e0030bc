package common

import (
	"slices"
)

// Rotate returns the rotation of values that starts at index
func Rotate(values []int, index int) []int {
	n := len(values)
	rotated := make([]int, 0, n)
	if n == 0 {
		return rotated
	}
	index = Modulo(index, n)
	rotated = append(rotated, values[index:]...)
	return append(rotated, values[:index]...)
}

// Rotations returns all n cyclic rotations of values, the k-th starting at values[k]
func Rotations(values []int) [][]int {
	rotations := make([][]int, len(values))
	for i := range values {
		rotations[i] = Rotate(values, i)
	}
	return rotations
}

// RotationIndex returns the k for which a equals Rotate(b, k), or -1.
// Comparison is element-wise and order-sensitive.
func RotationIndex(a, b []int) int {
	if len(a) != len(b) {
		return -1
	}
	for k, rotation := range Rotations(b) {
		if slices.Equal(a, rotation) {
			return k
		}
	}
	return -1
}

// IsRotation reports whether a is a cyclic rotation of b. Empty inputs have no
// rotations and never match.
func IsRotation(a, b []int) bool {
	return RotationIndex(a, b) != -1
}

// canonicalKey returns the comparison key of values, sorting a copy first when
// the comparison is unordered
func canonicalKey(values []int, ordered bool) string {
	if ordered {
		return Join(values)
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return Join(sorted)
}

// SameElements reports whether a and b hold the same values regardless of order
func SameElements(a, b []int) bool {
	return len(a) == len(b) && canonicalKey(a, false) == canonicalKey(b, false)
}

// SubarrayCount pairs a representative subarray with the number of entries
// equivalent to it
type SubarrayCount struct {
	Values []int `json:"values"`
	Count  int   `json:"count"`
}

// UniqueSubarrays drops equivalent entries, keeping the first occurrence of each.
// When ordered is false, [a b] and [b a] are equivalent. The returned entries are
// the original, unsorted subarrays.
func UniqueSubarrays(arrays [][]int, ordered bool) [][]int {
	counts := UniqueSubarrayCounts(arrays, ordered)
	unique := make([][]int, len(counts))
	for i, c := range counts {
		unique[i] = c.Values
	}
	return unique
}

// UniqueSubarrayCounts is UniqueSubarrays with the size of each equivalence class
func UniqueSubarrayCounts(arrays [][]int, ordered bool) []SubarrayCount {
	positions := make(map[string]int)
	var counts []SubarrayCount

	for _, values := range arrays {
		key := canonicalKey(values, ordered)
		if pos, ok := positions[key]; ok {
			counts[pos].Count++
			continue
		}
		positions[key] = len(counts)
		counts = append(counts, SubarrayCount{Values: values, Count: 1})
	}

	return counts
}

// SearchSubarrays returns the positions in haystack whose entries hold the same
// values as query, both treated as unordered
func SearchSubarrays(query []int, haystack [][]int) []int {
	key := canonicalKey(query, false)
	found := []int{}
	for i, entry := range haystack {
		if canonicalKey(entry, false) == key {
			found = append(found, i)
		}
	}
	return found
}

// Contains reports whether every element of subset appears in superset
func Contains(superset, subset []int) bool {
	for _, v := range subset {
		if !slices.Contains(superset, v) {
			return false
		}
	}
	return true
}
