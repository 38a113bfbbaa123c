package i18n

import "errors"

var (
	ErrFailedToParseYAML = errors.New("failed to parse YAML translations")
	ErrInvalidCatalog    = errors.New("invalid translation catalog structure")
	ErrFailedToReadFile  = errors.New("failed to read translation file")
	ErrEmptyLanguageCode = errors.New("empty language code in catalog")
)
