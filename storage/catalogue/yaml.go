package catalogue

import (
	"context"
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/campusunite/backend/core"
	"github.com/campusunite/backend/core/event"
)

// yamlFile is the on-disk catalogue format:
//
//	events:
//	  - id: "1"
//	    title: Tech Innovators Hackathon 2024
//	    tags: [Technical, Hackathon]
//	    past: false
type yamlFile struct {
	Events []event.Event `yaml:"events"`
}

type yamlCatalogue struct {
	events []event.Event
}

var _ event.Catalogue = (*yamlCatalogue)(nil)

// Decode reads and validates a YAML catalogue.
func Decode(r io.Reader) ([]event.Event, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading catalogue")
	}
	var f yamlFile
	if err = yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, errors.Wrap(err, "decoding catalogue")
	}
	for i := range f.Events {
		e := &f.Events[i]
		e.ID = core.CleanString(e.ID)
		e.Title = core.CleanString(e.Title)
		e.Location = core.CleanString(e.Location)
		e.Tags = core.CleanStrings(e.Tags)
	}
	if err = event.CheckIDs(f.Events); err != nil {
		return nil, err
	}
	return f.Events, nil
}

// Load reads and validates the YAML catalogue at `path`.
func Load(path string) ([]event.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening catalogue")
	}
	defer func() { _ = f.Close() }()
	return Decode(f)
}

// NewYAML returns a catalogue loaded once from the YAML file at `path`.
func NewYAML(path string) (event.Catalogue, error) {
	events, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &yamlCatalogue{events: events}, nil
}

func (c *yamlCatalogue) Events(context.Context) ([]event.Event, error) {
	return event.CloneAll(c.events), nil
}

// New returns the YAML catalogue at `path`, or the built-in sample one if `path` is empty.
func New(path string) (event.Catalogue, error) {
	if path == "" {
		return NewSample(), nil
	}
	return NewYAML(path)
}
