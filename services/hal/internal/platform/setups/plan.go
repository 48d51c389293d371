package setups

import "co2ampel-go/variant"

// ResourcePlan specifies wiring and operating parameters chosen by a setup.
// Providers consume this plan to instantiate bus owners. Pins are logical
// board pin numbers.
type ResourcePlan struct {
	I2C  []I2CPlan
	SPI  []SPIPlan
	UART []UARTPlan
}

type I2CPlan struct {
	ID     string         // e.g. "wire"
	Sercom variant.Sercom // controller
	SDA    int
	SCL    int
	Hz     uint32 // bus frequency
}

type SPIPlan struct {
	ID     string
	Sercom variant.Sercom
	MOSI   int
	SCK    int
	MISO   int
	CS     int // driven as GPIO
	Hz     uint32
}

// UARTPlan only reserves the pins; no UART driver is built here.
type UARTPlan struct {
	ID     string
	Sercom variant.Sercom
	TX     int
	RX     int
}

// BusPins returns every pin the plan hands to a bus controller, keyed by pin
// with the owning bus id. Chip selects stay GPIO and are not included.
func (p ResourcePlan) BusPins() map[int]string {
	m := make(map[int]string)
	for _, b := range p.I2C {
		m[b.SDA] = b.ID
		m[b.SCL] = b.ID
	}
	for _, b := range p.SPI {
		m[b.MOSI] = b.ID
		m[b.SCK] = b.ID
		m[b.MISO] = b.ID
	}
	for _, b := range p.UART {
		m[b.TX] = b.ID
		m[b.RX] = b.ID
	}
	return m
}

// SPIByID finds an SPI plan entry.
func (p ResourcePlan) SPIByID(id string) (SPIPlan, bool) {
	for _, b := range p.SPI {
		if b.ID == id {
			return b, true
		}
	}
	return SPIPlan{}, false
}

// I2CByID finds an I2C plan entry.
func (p ResourcePlan) I2CByID(id string) (I2CPlan, bool) {
	for _, b := range p.I2C {
		if b.ID == id {
			return b, true
		}
	}
	return I2CPlan{}, false
}
