package source

import "errors"

var UnsupportedSourceError = errors.New("Unsupported query type for this source")
