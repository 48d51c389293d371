// Package variant is the board definition for the CO2-Ampel (ATSAMD21G18,
// crystalless). It maps logical pin numbers to SAMD21 pads, records the
// peripheral routing chosen for each pad, and holds the one-time pin
// initialization run at boot.
//
// Application code addresses pins only by logical number; port/pad values are
// derived from the table and never used directly.
package variant

// Clocks.
const (
	MainOscHz   = 32768 // 32.768 kHz reference, no external crystal fitted
	Crystalless = true
	MCKHz       = 48_000_000
)

// Pin counts.
const (
	NumDigitalPins   = 23
	NumAnalogInputs  = 2
	NumAnalogOutputs = 0
	ADCResolution    = 12
)

// Board roles.
const (
	PinLSensor    = 0
	PinLSensorPwr = 1
	PinSwitch     = 2
	PinLED        = 3 // PA27, red
	PinBuzzer     = 4
	PinWS2812     = 5

	LEDBuiltin = PinLED
)

// Analog pins.
const (
	PinA0   = 0
	PinA1   = 1
	PinDAC0 = 0

	A0   = PinA0
	A1   = PinA1
	DAC0 = PinDAC0
)

// SPI (WINC1500).
const (
	PinSPISS   = 14
	PinSPIMOSI = 15
	PinSPISCK  = 16
	PinSPIMISO = 17

	SS   = PinSPISS
	MOSI = PinSPIMOSI
	SCK  = PinSPISCK
	MISO = PinSPIMISO
)

// I2C: Wire to the SCD30, Wire1 to the ATECC.
const (
	PinWireSDA  = 6
	PinWireSCL  = 7
	PinWire1SDA = 8
	PinWire1SCL = 9

	SDA  = PinWireSDA
	SCL  = PinWireSCL
	SDA1 = PinWire1SDA
	SCL1 = PinWire1SCL
)

// USB.
const (
	PinUSBDM = 23
	PinUSBDP = 24
)

// WINC1500 WiFi module.
const (
	WINCChipEnPin = 10
	WINCWakePin   = 11
	WINCResetPin  = 12
	WINCIntnPin   = 13
	WINCSPICSPin  = 14
)

// Serial1 (WINC UART).
const (
	PinSerial1RX = 19
	PinSerial1TX = 18
)

// RFM9x LoRa module.
const (
	PinRFM9xCS   = 20
	PinRFM9xDIO0 = 21
	PinRFM9xDIO1 = 22
)

// 32 kHz crystal pads (unpopulated).
const (
	PinXIN32  = 25
	PinXOUT32 = 26
)

// AnalogInputToDigitalPin maps an analog input number to its logical pin.
func AnalogInputToDigitalPin(p int) (int, bool) {
	if p >= 0 && p < NumAnalogInputs {
		return p, true
	}
	return -1, false
}
