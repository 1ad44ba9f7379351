package sliceutil

// Reversed 返回切片的逆序副本。
//
// 原切片不会被修改。nil 或空切片返回 nil。
//
// 功能相当于：
//
//	out := slices.Clone(list)
//	slices.Reverse(out)
//
// 但不修改任何输入，可在需要保留原顺序的场景下直接使用。
func Reversed[T any](list []T) []T {
	if len(list) == 0 {
		return nil
	}
	out := make([]T, len(list))
	for i, v := range list {
		out[len(list)-1-i] = v
	}
	return out
}

// Clone 返回切片的浅拷贝。
//
// nil 或空切片返回 nil。修改返回值不会影响原切片。
func Clone[T any](list []T) []T {
	if len(list) == 0 {
		return nil
	}
	out := make([]T, len(list))
	copy(out, list)
	return out
}
