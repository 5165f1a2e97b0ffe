package grid

// BusKind distinguishes the bus variants a branch can terminate on
type BusKind string

const (
	BusKindAC BusKind = "ac"
	BusKindDC BusKind = "dc"
)

// Bus is a network node referenced by branches. Buses are created and owned
// by the surrounding topology layer; branches hold borrowed references.
type Bus interface {
	Component
	BusKind() BusKind
}

// ACBus is an alternating-current network node
type ACBus struct {
	Device
	Number int `json:"number" yaml:"number"`
}

// NewACBus creates a validated AC bus
func NewACBus(bus ACBus) (*ACBus, error) {
	bus.ensureUUID()
	if err := bus.Validate(); err != nil {
		return nil, err
	}
	return &bus, nil
}

// BusKind identifies the bus variant
func (b *ACBus) BusKind() BusKind {
	return BusKindAC
}

// Validate checks the bus fields
func (b *ACBus) Validate() error {
	return b.Device.validate("ACBus")
}

// ACBusExample returns the fixed reference AC bus used by example branches
func ACBusExample() *ACBus {
	bus, err := NewACBus(ACBus{Device: Device{Name: "ExampleACBus"}, Number: 1})
	if err != nil {
		panic(err)
	}
	return bus
}

// DCBus is a direct-current network node
type DCBus struct {
	Device
	Number int `json:"number" yaml:"number"`
}

// NewDCBus creates a validated DC bus
func NewDCBus(bus DCBus) (*DCBus, error) {
	bus.ensureUUID()
	if err := bus.Validate(); err != nil {
		return nil, err
	}
	return &bus, nil
}

// BusKind identifies the bus variant
func (b *DCBus) BusKind() BusKind {
	return BusKindDC
}

// Validate checks the bus fields
func (b *DCBus) Validate() error {
	return b.Device.validate("DCBus")
}

// DCBusExample returns the fixed reference DC bus used by example branches
func DCBusExample() *DCBus {
	bus, err := NewDCBus(DCBus{Device: Device{Name: "ExampleDCBus"}, Number: 1})
	if err != nil {
		panic(err)
	}
	return bus
}

// Area is a regional grouping of buses, referenced by area interchanges
type Area struct {
	Device
}

// NewArea creates a validated area
func NewArea(area Area) (*Area, error) {
	area.ensureUUID()
	if err := area.Validate(); err != nil {
		return nil, err
	}
	return &area, nil
}

// Validate checks the area fields
func (a *Area) Validate() error {
	return a.Device.validate("Area")
}

// AreaExample returns the fixed reference area used by example interchanges
func AreaExample() *Area {
	area, err := NewArea(Area{Device: Device{Name: "ExampleArea"}})
	if err != nil {
		panic(err)
	}
	return area
}
