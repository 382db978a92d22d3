package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile holds per-deployment conversion defaults.
//
//	block_keywords:
//	  - 广告
//	  - 本站网址
//	book:
//	  author: 佚名
//	  maker: novelpub
type Profile struct {
	BlockKeywords []string    `yaml:"block_keywords"`
	Book          BookProfile `yaml:"book"`
}

type BookProfile struct {
	Title       string `yaml:"title"`
	Author      string `yaml:"author"`
	Maker       string `yaml:"maker"`
	Description string `yaml:"description"`
	Cover       string `yaml:"cover"`
}

// LoadProfile reads the YAML profile at path. An empty path yields an empty
// profile. Empty keywords are dropped; the rest are kept verbatim.
func LoadProfile(path string) (*Profile, error) {
	if path == "" {
		return &Profile{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	return ParseProfile(data)
}

func ParseProfile(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}

	keywords := p.BlockKeywords[:0]
	for _, k := range p.BlockKeywords {
		if k != "" {
			keywords = append(keywords, k)
		}
	}
	p.BlockKeywords = keywords
	return &p, nil
}
