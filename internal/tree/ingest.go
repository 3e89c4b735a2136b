package tree

import "strings"

// Ingest splits path on sep and extends the tree below root with its
// segments. Empty segments are skipped, so "", "/" and "a//b/" are all valid.
//
// At each level only the last existing child is considered for reuse: paths
// arriving in the order a/x, b/y, a/z produce two sibling "a" nodes. This keeps
// ingestion append-only, which in turn keeps every previously issued
// Coordinate pointing at the same node. It returns the number of nodes added.
func Ingest(root *Node, path, sep string) int {
	if root == nil {
		return 0
	}
	if sep == "" {
		sep = DefaultSeparator
	}
	added := 0
	current := root
	for _, segment := range strings.Split(path, sep) {
		if segment == "" {
			continue
		}
		if last := current.LastChild(); last != nil && last.Value == segment {
			current = last
			continue
		}
		current = current.AddChild(segment)
		added++
	}
	return added
}

// IngestAll ingests paths in order and returns the number of nodes added.
func IngestAll(root *Node, paths []string, sep string) int {
	added := 0
	for _, p := range paths {
		added += Ingest(root, p, sep)
	}
	return added
}

// Build returns a fresh tree containing paths.
func Build(paths []string, sep string) *Node {
	root := New()
	IngestAll(root, paths, sep)
	return root
}
