package contract

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/huangsam/esgscore/schema"
	"gopkg.in/yaml.v3"
)

// profileFile is the document shape of a profiles file.
type profileFile struct {
	Profiles []schema.InvestorProfile `yaml:"profiles" validate:"required,min=1,dive"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadProfiles reads and validates investor profiles from a YAML file.
func LoadProfiles(path string) ([]schema.InvestorProfile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open profiles file: %w", err)
	}
	defer func() { _ = f.Close() }()

	profiles, err := ParseProfiles(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return profiles, nil
}

// ParseProfiles decodes a profiles document. Unknown fields are rejected so that
// typos in a key do not silently fall back to zero values.
func ParseProfiles(r io.Reader) ([]schema.InvestorProfile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc profileFile
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("profiles file is empty")
		}
		return nil, fmt.Errorf("invalid profiles YAML: %w", err)
	}
	for i := range doc.Profiles {
		p := &doc.Profiles[i]
		p.Name = strings.TrimSpace(p.Name)
		p.Sector = strings.TrimSpace(p.Sector)
		if p.Certifications == nil {
			p.Certifications = []string{}
		}
	}

	if err := validate.Struct(doc); err != nil {
		return nil, describeValidation(err)
	}
	return doc.Profiles, nil
}

// describeValidation flattens validator errors into one readable error.
func describeValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "profileFile.")
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s (received %v)", field, fe.Tag(), fe.Param(), fe.Value()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s is %s", field, fe.Tag()))
	}
	return fmt.Errorf("invalid profiles: %s", strings.Join(msgs, "; "))
}
