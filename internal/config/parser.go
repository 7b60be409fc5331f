package config

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	sliderrors "github.com/alexisbeaulieu97/originslider/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseScene loads a scene file from disk, validates it, and returns the resulting model.
func ParseScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, sliderrors.NewParseError(path, 0, err)
	}
	return DecodeScene(path, data)
}

// DecodeScene decodes and validates scene YAML. Unknown keys are rejected;
// path is only used in error messages.
func DecodeScene(path string, data []byte) (*Scene, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var scene Scene
	if err := dec.Decode(&scene); err != nil {
		return nil, sliderrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateScene(&scene); err != nil {
		return nil, err
	}

	return &scene, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
