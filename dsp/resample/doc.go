// Package resample maps an arbitrary-length cycle onto the fixed sample
// count a loss model expects.
//
// Two strategies are provided:
//
//   - [Decimate] picks samples by truncated index, as the upload path of the
//     web front-end always did. No new values are created.
//   - [Linear] interpolates between neighbours and optionally wraps around the
//     cycle seam, which keeps a periodic signal periodic.
package resample
