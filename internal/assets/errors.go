package assets

import "errors"

// ErrAssetNotFound is wrapped with the offending path when an asset file does not exist.
var ErrAssetNotFound = errors.New("asset not found")
