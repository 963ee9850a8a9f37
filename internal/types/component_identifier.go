package types

import (
	"fmt"
	"strings"
)

// ComponentIdentifier names one scored component of one grade's assessment:
// the (grade, subject, component code, provider) tuple the correlation engine
// treats as a correlation endpoint. Identifiers are plain values and are
// never mutated after construction; they are used directly as map keys.
type ComponentIdentifier struct {
	Grade     int          `json:"grade" yaml:"grade"`
	Subject   string       `json:"subject" yaml:"subject"`
	Component string       `json:"component" yaml:"component"`
	Provider  TestProvider `json:"provider" yaml:"provider"`
}

// Key returns a stable string form, e.g. "grade3_ELA_D1OP".
func (c ComponentIdentifier) Key() string {
	return fmt.Sprintf("grade%d_%s_%s", c.Grade, c.Subject, c.Component)
}

func (c ComponentIdentifier) String() string {
	return c.Key()
}

// Less orders identifiers by grade, then component code. This is the sort
// order every list of identifiers in the system uses.
func (c ComponentIdentifier) Less(other ComponentIdentifier) bool {
	if c.Grade != other.Grade {
		return c.Grade < other.Grade
	}
	if c.Component != other.Component {
		return c.Component < other.Component
	}
	return c.Subject < other.Subject
}

// Validate checks the identifier against the provider's component family.
func (c ComponentIdentifier) Validate() error {
	if c.Grade < 0 {
		return fmt.Errorf("component identifier: negative grade %d", c.Grade)
	}
	if c.Component == "" {
		return fmt.Errorf("component identifier: empty component code")
	}
	if !c.Provider.IsValid() {
		return fmt.Errorf("component identifier: unknown provider %q", c.Provider)
	}
	if prefix := c.Provider.ComponentPrefix(); !strings.HasPrefix(c.Component, prefix) {
		return fmt.Errorf("component identifier: code %q does not match provider prefix %q", c.Component, prefix)
	}
	return nil
}
