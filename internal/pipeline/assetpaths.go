package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// ResolveAssetPaths rewrites relative img[src] and link[href] references of a
// rendered deck to absolute file:// URLs under assetDir, so layouts of a
// custom template set can ship their own logos and backgrounds.
// If assetDir is empty, returns the HTML unchanged.
//
// References that are URLs, data URIs, absolute paths, or that escape
// assetDir are left untouched.
func ResolveAssetPaths(deckHTML, assetDir string) (string, error) {
	if assetDir == "" {
		return deckHTML, nil
	}

	absDir, err := filepath.Abs(assetDir)
	if err != nil {
		return "", err
	}

	doc, err := html.Parse(strings.NewReader(deckHTML))
	if err != nil {
		return "", err
	}

	resolveNode(doc, absDir)

	var buf strings.Builder
	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// resolveNode walks the tree and rewrites asset references.
func resolveNode(n *html.Node, dir string) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "img":
			resolveAttr(n, "src", dir)
		case "link":
			resolveAttr(n, "href", dir)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		resolveNode(c, dir)
	}
}

// resolveAttr rewrites one attribute if it holds a relative path under dir.
func resolveAttr(n *html.Node, key, dir string) {
	for i, attr := range n.Attr {
		if attr.Key != key || !isRelativeAssetPath(attr.Val) {
			continue
		}

		absPath := filepath.Join(dir, attr.Val)
		if !isPathUnderDir(absPath, dir) {
			continue
		}

		u := url.URL{Scheme: "file", Path: filepath.ToSlash(absPath)}
		n.Attr[i].Val = u.String()
	}
}

// isRelativeAssetPath returns true if the path should be rewritten.
func isRelativeAssetPath(path string) bool {
	if path == "" || strings.HasPrefix(path, "#") || filepath.IsAbs(path) {
		return false
	}
	for _, prefix := range []string{"http://", "https://", "file://", "data:", "//"} {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

// isPathUnderDir checks if absPath is under dir (prevents path traversal).
func isPathUnderDir(absPath, dir string) bool {
	cleanDir := filepath.Clean(dir)
	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}
	return strings.HasPrefix(filepath.Clean(absPath)+string(filepath.Separator), cleanDir)
}
