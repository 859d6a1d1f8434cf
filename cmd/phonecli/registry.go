package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mohamadzoh/phonelib/pkg/phone"
)

// registryFile is the YAML shape of a custom country table:
//
//	countries:
//	  - name: United States
//	    code: US
//	    prefix: 1
//	    lengths: [10]
//
// Entry order in the file is resolution order.
type registryFile struct {
	Countries []registryEntry `yaml:"countries"`
}

type registryEntry struct {
	Name    string `yaml:"name"`
	Code    string `yaml:"code"`
	Prefix  int    `yaml:"prefix"`
	Lengths []int  `yaml:"lengths"`
}

func loadRegistry(path string) (*phone.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(file.Countries) == 0 {
		return nil, fmt.Errorf("%s: no countries defined", path)
	}

	rules := make([]phone.Country, 0, len(file.Countries))
	for i, e := range file.Countries {
		if e.Code == "" || e.Prefix <= 0 || len(e.Lengths) == 0 {
			return nil, fmt.Errorf("%s: entry %d needs code, prefix and lengths", path, i)
		}
		rules = append(rules, phone.Country{
			Name:         e.Name,
			Code:         e.Code,
			Prefix:       e.Prefix,
			PhoneLengths: e.Lengths,
		})
	}
	return phone.NewRegistry(rules), nil
}
