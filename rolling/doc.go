// Package rolling computes sliding-window statistical moments over dense
// numeric arrays.
//
// Four entry points cover the four moment orders: Mean, SD, Skewness, and
// Kurtosis. Each rolls a window of lag samples along the last axis of the
// input, advancing the window start by skip samples between outputs; all
// leading axes are independent batch rows processed in parallel. The
// window count per row is (n-lag)/skip + 1.
//
// Conventions:
//   - All moments are population (divisor n) forms.
//   - Kurtosis is the raw fourth standardized moment (normal data ≈ 3),
//     not excess kurtosis; subtract 3 for excess.
//   - Windows with zero variance have skewness and kurtosis defined as 0,
//     and tiny negative variances from floating-point cancellation are
//     clamped to 0 before the square root.
//
// The engine keeps running power sums and slides them in O(skip) per
// window, so a full row costs O(n) regardless of lag. For
// cancellation-prone data (low variance, large magnitude, long windows)
// config.RollingConfig.Exact switches to per-window re-summation.
//
// Example Usage:
//
//	a, _ := array.New(samples, 3, 5, 100000)
//	res, err := rolling.Kurtosis(a, 250, 50, true)
//	// res.Kurtosis, res.Skewness, res.SD, res.Mean
package rolling
