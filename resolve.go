package fget

import "strings"

// DefaultFileName is used when no output name was given and the URL
// path ends in a slash or has no path at all.
const DefaultFileName = "index.html"

// Target is the resolved destination of a download.
type Target struct {
	Path string
}

// Resolve determines the local path the download will be written to.
// An explicit output name always wins and is used verbatim. Otherwise
// the name is the portion of the URL path after the final slash, or
// DefaultFileName when that portion is empty. Resolution is purely
// derivational: it touches neither the network nor the filesystem.
func (r *Request) Resolve() Target {
	if r.Output != "" {
		return Target{Path: r.Output}
	}

	name := r.URL.Path
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		name = DefaultFileName
	}
	return Target{Path: name}
}
