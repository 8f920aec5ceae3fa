package config

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/bytom/timefmt/errors"
)

// FileName is the config file inside the root dir.
const FileName = "config.toml"

const configHeader = `# This is a TOML config file.
# For more information, see https://github.com/toml-lang/toml
`

// EnsureRoot creates rootDir and writes the default config file if it is
// missing. An existing file is left untouched.
func EnsureRoot(rootDir string) error {
	if err := os.MkdirAll(rootDir, 0700); err != nil {
		return errors.Wrap(err, "create root dir")
	}

	configFilePath := filepath.Join(rootDir, FileName)
	if _, err := os.Stat(configFilePath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return errors.Wrap(err, "stat config file")
	}

	data, err := DefaultConfigTOML()
	if err != nil {
		return err
	}
	return errors.Wrap(ioutil.WriteFile(configFilePath, data, 0644), "write config file")
}

// DefaultConfigTOML encodes DefaultConfig as a commented TOML document.
func DefaultConfigTOML() ([]byte, error) {
	buf := bytes.NewBufferString(configHeader)
	if err := toml.NewEncoder(buf).Encode(DefaultConfig()); err != nil {
		return nil, errors.Wrap(err, "encode default config")
	}
	return buf.Bytes(), nil
}
