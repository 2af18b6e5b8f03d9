// Package relative turns site URL paths relative
// with string manipulation exclusively.
package relative

import (
	"fmt"
	"path"
	"strings"
)

const _slash = "/"

// Path returns a path to dst, relative to the directory src.
// Both paths must be relative or both paths must be absolute,
// and they must both be /-separated.
//
// This operation relies on string manipulation exclusively,
// so it doesn't fail.
func Path(src, dst string) string {
	if path.IsAbs(src) != path.IsAbs(dst) {
		panic(fmt.Sprintf("relative.Path(%q, %q): both must be absolute, or both must be relative", src, dst))
	}

	// src must always be a directory.
	// Drop the trailing /, if any.
	src = strings.TrimSuffix(src, _slash)
	if src == "." {
		src = ""
	}

	var srcParts, dstParts []string
	if len(src) > 0 {
		srcParts = strings.Split(src, _slash)
	}
	if len(dst) > 0 {
		dstParts = strings.Split(dst, _slash)
	}

	for len(srcParts) > 0 && len(dstParts) > 0 && srcParts[0] == dstParts[0] {
		srcParts = srcParts[1:]
		dstParts = dstParts[1:]
	}

	var sb strings.Builder
	for range srcParts {
		if sb.Len() > 0 {
			sb.WriteString(_slash)
		}
		sb.WriteString("..")
	}
	for _, p := range dstParts {
		if sb.Len() > 0 {
			sb.WriteString(_slash)
		}
		sb.WriteString(p)
	}

	return sb.String()
}
