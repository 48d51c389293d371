package setups

import "co2ampel-go/variant"

// Params are the operating parameters of the CO2-Ampel buses. Zero fields
// take the defaults below.
type Params struct {
	WireHz  uint32 // SCD30
	Wire1Hz uint32 // ATECC
	SPIHz   uint32 // WINC1500
}

const (
	DefaultWireHz  = 100_000 // SCD30 tops out at 100 kHz
	DefaultWire1Hz = 100_000
	DefaultSPIHz   = 4_000_000
)

func orDefault(v, d uint32) uint32 {
	if v == 0 {
		return d
	}
	return v
}

// WithDefaults fills zero fields.
func (p Params) WithDefaults() Params {
	return Params{
		WireHz:  orDefault(p.WireHz, DefaultWireHz),
		Wire1Hz: orDefault(p.Wire1Hz, DefaultWire1Hz),
		SPIHz:   orDefault(p.SPIHz, DefaultSPIHz),
	}
}

// Plan wires the board's bus controllers to the variant's pins.
func Plan(p Params) ResourcePlan {
	p = p.WithDefaults()
	w0, w1 := variant.Wire(), variant.Wire1()
	spi := variant.SPI()
	u := variant.Serial1()
	return ResourcePlan{
		I2C: []I2CPlan{
			{ID: w0.Name, Sercom: w0.Sercom, SDA: w0.SDA, SCL: w0.SCL, Hz: p.WireHz},
			{ID: w1.Name, Sercom: w1.Sercom, SDA: w1.SDA, SCL: w1.SCL, Hz: p.Wire1Hz},
		},
		SPI: []SPIPlan{
			{ID: spi.Name, Sercom: spi.Sercom, MOSI: spi.MOSI, SCK: spi.SCK, MISO: spi.MISO, CS: spi.SS, Hz: p.SPIHz},
		},
		UART: []UARTPlan{
			{ID: u.Name, Sercom: u.Sercom, TX: u.TX, RX: u.RX},
		},
	}
}
