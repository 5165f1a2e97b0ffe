package grid

import "github.com/google/uuid"

// Component is the contract every grid entity satisfies
type Component interface {
	GetName() string
	Validate() error
}

// Device is the identity every physical component embeds. Name is the
// serialization key; the UUID is runtime identity only and never appears on
// the wire. Name uniqueness is enforced by System, not by Device.
type Device struct {
	Name string    `json:"name" yaml:"name"`
	UUID uuid.UUID `json:"-" yaml:"-"`
}

// NewDevice creates a device identity with a fresh UUID
func NewDevice(name string) (Device, error) {
	if name == "" {
		return Device{}, missingField("Device", "name")
	}
	return Device{Name: name, UUID: uuid.New()}, nil
}

// GetName returns the device name
func (d Device) GetName() string {
	return d.Name
}

// validate checks the identity fields on behalf of the embedding component
func (d Device) validate(component string) error {
	if d.Name == "" {
		return missingField(component, "name")
	}
	return nil
}

// ensureUUID assigns a UUID when the embedding constructor received a
// literal without one
func (d *Device) ensureUUID() {
	if d.UUID == uuid.Nil {
		d.UUID = uuid.New()
	}
}
