// Package report computes read-only views over a user's collection:
// rating statistics, uniform random picks, rating-sorted and substring-filtered
// listings, and the fixed ten-bin rating histogram with its mean marker.
package report
