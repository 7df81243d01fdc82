package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// File is the optional TOML settings file. Values set by flags or
// environment variables take precedence over the file.
type File struct {
	Slack SlackFile `toml:"slack"`
}

// SlackFile is the [slack] table of the settings file
type SlackFile struct {
	UserToken  string `toml:"user_token" masq:"secret"`
	APIURL     string `toml:"api_url"`
	EnableSend bool   `toml:"enable_send"`
}

// LoadFile reads and parses the settings file at path
func LoadFile(path string) (*File, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}

	var file File
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML config", goerr.V("path", path))
	}

	return &file, nil
}

// ApplyFile fills settings from the file unless isSet reports that the flag
// was given on the command line or through its environment variable.
func (x *Slack) ApplyFile(file SlackFile, isSet func(name string) bool) {
	given := func(name string) bool {
		return isSet != nil && isSet(name)
	}

	if !given(flagSlackUserToken) && file.UserToken != "" {
		x.userToken = file.UserToken
	}
	if !given(flagSlackAPIURL) && file.APIURL != "" {
		x.apiURL = file.APIURL
	}
	if !given(flagEnableSend) {
		x.enableSend = file.EnableSend
	}
}
