// Package yaml loads site profiles from YAML files.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/newsrag"
	"gopkg.in/yaml.v3"
)

// LoadSite reads a site profile from path. Fields missing from the file keep
// the values of newsrag.DefaultSite.
func LoadSite(path string) (*newsrag.Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, newsrag.Errorf(newsrag.ENOTFOUND, "site profile %s not found", path)
		}
		return nil, fmt.Errorf("read site profile: %w", err)
	}
	return DecodeSite(bytes.NewReader(data))
}

// DecodeSite decodes a site profile over the defaults and validates it.
// Unknown keys are rejected.
func DecodeSite(r io.Reader) (*newsrag.Site, error) {
	site := newsrag.DefaultSite()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(site); err != nil && !errors.Is(err, io.EOF) {
		return nil, newsrag.Errorf(newsrag.EINVALID, "decode site profile: %v", err)
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}
	return site, nil
}
