package variant

// Sercom identifies a SERCOM instance (0..5).
type Sercom uint8

const (
	Sercom0 Sercom = iota
	Sercom1
	Sercom2
	Sercom3
	Sercom4
	Sercom5

	SercomCount = 6
)

func (s Sercom) String() string { return "sercom" + string(rune('0'+s)) }

// SPITXPad selects the DOPO pad layout (data out / clock).
type SPITXPad uint8

const (
	SPIPad0SCK1 SPITXPad = iota
	SPIPad2SCK3
	SPIPad3SCK1
	SPIPad0SCK3
)

// RXPad selects the SERCOM receive pad (DIPO / RXPO).
type RXPad uint8

const (
	SercomRXPad0 RXPad = iota
	SercomRXPad1
	SercomRXPad2
	SercomRXPad3
)

// UARTTXPad selects the TXPO layout.
type UARTTXPad uint8

const (
	UARTTXPad0 UARTTXPad = iota
	UARTTXPad2
	UARTTXRTSCTSPad023
)

// SPIInterface is an SPI master bound to a SERCOM.
type SPIInterface struct {
	Name   string
	Sercom Sercom
	TXPad  SPITXPad
	RXPad  RXPad
	SS     int // not driven by the SERCOM; kept for reference
	MOSI   int
	SCK    int
	MISO   int
}

// WireInterface is an I2C master bound to a SERCOM.
type WireInterface struct {
	Name   string
	Sercom Sercom
	SDA    int
	SCL    int
}

// UARTInterface is a UART bound to a SERCOM.
type UARTInterface struct {
	Name   string
	Sercom Sercom
	RX     int
	TX     int
	RXPad  RXPad
	TXPad  UARTTXPad
}

const (
	SPIInterfacesCount  = 1
	WireInterfacesCount = 2
)

var (
	spi0 = SPIInterface{
		Name: "spi", Sercom: Sercom1, TXPad: SPIPad0SCK1, RXPad: SercomRXPad3,
		SS: PinSPISS, MOSI: PinSPIMOSI, SCK: PinSPISCK, MISO: PinSPIMISO,
	}
	wire0 = WireInterface{Name: "wire", Sercom: Sercom0, SDA: PinWireSDA, SCL: PinWireSCL}
	wire1 = WireInterface{Name: "wire1", Sercom: Sercom2, SDA: PinWire1SDA, SCL: PinWire1SCL}
	// Pad selections are recorded as shipped; the pins sit on SERCOM5 PAD[3]/PAD[2].
	serial1 = UARTInterface{
		Name: "serial1", Sercom: Sercom5, RX: PinSerial1RX, TX: PinSerial1TX,
		RXPad: SercomRXPad1, TXPad: UARTTXPad0,
	}
)

// SPI is the WINC1500 bus (SERCOM1).
func SPI() SPIInterface { return spi0 }

// Wire is the SCD30 bus (SERCOM0).
func Wire() WireInterface { return wire0 }

// Wire1 is the ATECC bus (SERCOM2).
func Wire1() WireInterface { return wire1 }

// Serial1 is the hardware UART (SERCOM5).
func Serial1() UARTInterface { return serial1 }

// Interface is a bus summary: which SERCOM it uses and which logical pins
// it owns while active.
type Interface struct {
	Name   string
	Sercom Sercom
	Pins   []int
}

// Interfaces lists every SERCOM-backed bus on the board.
func Interfaces() []Interface {
	return []Interface{
		{Name: spi0.Name, Sercom: spi0.Sercom, Pins: []int{spi0.MOSI, spi0.SCK, spi0.MISO}},
		{Name: wire0.Name, Sercom: wire0.Sercom, Pins: []int{wire0.SDA, wire0.SCL}},
		{Name: wire1.Name, Sercom: wire1.Sercom, Pins: []int{wire1.SDA, wire1.SCL}},
		{Name: serial1.Name, Sercom: serial1.Sercom, Pins: []int{serial1.RX, serial1.TX}},
	}
}

// Timer/counter instances in channel-instance order.
var tcInstances = [...]string{"TCC0", "TCC1", "TCC2", "TC3", "TC4", "TC5"}

// TCInstance names the timer behind a PWM or timer channel instance number.
func TCInstance(n int) (string, bool) {
	if n < 0 || n >= len(tcInstances) {
		return "", false
	}
	return tcInstances[n], true
}

// Serial port roles.
const (
	SerialPortUSBVirtual   = "usb"
	SerialPortMonitor      = "usb"
	SerialPortHardware     = "serial1"
	SerialPortHardwareOpen = "serial1"
)
