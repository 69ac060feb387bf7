package common

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

func WriteYAML(w io.Writer, value any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(value); err != nil {
		return errors.WithStack(err)
	}

	if err := encoder.Close(); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
