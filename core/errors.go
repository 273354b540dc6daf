package core

import "errors"

var (
	ErrDirectoryNotFound = errors.New("site: template directory not found")
	ErrTemplateNotFound  = errors.New("site: template not found")
)

func IsDirectoryNotFound(err error) bool {
	return errors.Is(err, ErrDirectoryNotFound)
}

func IsTemplateNotFound(err error) bool {
	return errors.Is(err, ErrTemplateNotFound)
}
