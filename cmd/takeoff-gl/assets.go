//go:build !js

package main

import (
	"io/fs"
	"os"
)

// assetFS reads sprites from the local disk.
func assetFS(root string) fs.FS {
	if root == "" {
		root = "."
	}
	return os.DirFS(root)
}
