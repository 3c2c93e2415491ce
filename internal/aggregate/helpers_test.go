package aggregate

import (
	"errors"

	"git.home.luguber.info/inful/i18nbuilder/internal/tree"
)

var errTransform = errors.New("transformer exploded")

type failingTransformer struct{}

func (failingTransformer) Transform(*tree.Mapping, string, bool, bool) error {
	return errTransform
}
