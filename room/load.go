package room

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Extensions accepted for room files, in lookup order
var Extensions = []string{".yaml", ".yml", ".toml", ".json"}

// LoadFile reads and validates a room file; the format follows the extension
func LoadFile(path string) (*Definition, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "read room %s", path)
	}
	d, err := decode(v)
	if err != nil {
		return nil, errors.Wrapf(err, "room %s", path)
	}
	if d.Name == "" {
		d.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Parse reads a room from r in the given format (yaml, toml, json)
func Parse(r io.Reader, format string) (*Definition, error) {
	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(r); err != nil {
		return nil, errors.Wrapf(err, "parse %s room", format)
	}
	d, err := decode(v)
	if err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func decode(v *viper.Viper) (*Definition, error) {
	var d Definition
	if err := v.Unmarshal(&d); err != nil {
		return nil, errors.Wrap(err, "decode room")
	}
	d.normalize()
	return &d, nil
}
