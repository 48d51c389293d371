package variant

//  idx  role              pad   EIC  ADC  SERCOM(C) SERCOM(D) TCC(E)   TCC(F)
//  00   light sensor      PA02  02   00
//  01   light sensor pwr  PA03  03   01
//  02   switch            PB03  03   11             5/01
//  03   LED red           PA27  15                                            GCLK_IO0
//  04   buzzer            PA05  05   05             0/01      TCC0/1
//  05   WS2812            PA22  06        3/00      5/00      TC4/0    TCC0/4
//  06   SDA SCD30         PA08  NMI  16   0/00      2/00      TCC0/0   TCC1/2
//  07   SCL SCD30         PA09  09   17   0/01      2/01      TCC0/1   TCC1/3
//  08   SDA ATECC         PA12  12        2/00      4/00      TCC2/0   TCC0/6
//  09   SCL ATECC         PA13  13        2/01      4/01      TCC2/1   TCC0/7
//  10   WINC enable       PB10  10                  4/02      TC5/0    TCC0/4
//  11   WINC wake         PB11  11                  4/03      TC5/1    TCC0/5
//  12   WINC reset        PA10  10   18   0/02      2/02      TCC1/0   TCC0/2
//  13   WINC irq          PA20  04        5/02      3/02               TCC0/6
//  14   WINC CS           PA18  02        1/02      3/02      TC3/0    TCC0/2
//  15   WINC MOSI         PA16  00        1/00      3/00      TCC2/0   TCC0/6
//  16   WINC SCK          PA17  01        1/01      3/01      TCC2/1   TCC0/7
//  17   WINC MISO         PA19  03        1/03      3/03      TC3/1    TCC0/3
//  18   WINC RX           PB23  07                  5/03
//  19   WINC TX           PB22  06                  5/02
//  20   RFM9X CS          PA21  05        5/03      3/03               TCC0/7
//  21   RFM9X DIO0        PA14  14        2/02      4/02      TC3/0    TCC0/4
//  22   RFM9X DIO1        PA15  15        2/03      4/03      TC3/1    TCC0/5
//  23   USB D-            PA24  12        3/02      5/02      TC5/0    TCC1/2
//  24   USB D+            PA25  13        3/03      5/03      TC5/1    TCC1/3
//  25   XIN32             PA00  00                  1/00      TCC2/0
//  26   XOUT32            PA01  01                  1/01      TCC2/1
//
// The columns list what the silicon offers; the table below records what this
// board selects. Field values are hardware data and are kept as shipped.
var pinDescriptions = [...]PinDescriptor{
	{PortA, 2, PioAnalog, AttrDigital | AttrAnalog, ADCChannel0, NotOnPWM, NotOnTimer, ExtInt2},           // light sensor (DAC capable)
	{PortA, 3, PioAnalog, AttrDigital, ADCChannel1, NotOnPWM, NotOnTimer, ExtInt3},                        // light sensor power
	{PortB, 3, PioDigital, AttrDigital, NoADCChannel, NotOnPWM, NotOnTimer, ExtIntNone},                   // switch
	{PortA, 27, PioDigital, AttrDigital, NoADCChannel, NotOnPWM, NotOnTimer, ExtIntNone},                  // LED
	{PortA, 5, PioDigital, AttrDigital | AttrPWM | AttrTimer, NoADCChannel, PWM0CH1, TCC0CH1, ExtIntNone}, // buzzer
	{PortA, 22, PioDigital, AttrDigital, NoADCChannel, NotOnPWM, NotOnTimer, ExtIntNone},                  // WS2812

	// SERCOM0, PINOUT=1
	{PortA, 8, PioSercom, AttrDigital, NoADCChannel, NotOnPWM, NotOnTimer, ExtIntNone}, // SDA: SERCOM0/PAD[0]
	{PortA, 9, PioSercom, AttrDigital, NoADCChannel, NotOnPWM, NotOnTimer, ExtIntNone}, // SCL: SERCOM0/PAD[1]

	// SERCOM2, PINOUT=1
	{PortA, 12, PioSercom, AttrDigital, NoADCChannel, NotOnPWM, NotOnTimer, ExtIntNone}, // SDA: SERCOM2/PAD[0]
	{PortA, 13, PioSercom, AttrDigital, NoADCChannel, NotOnPWM, NotOnTimer, ExtIntNone}, // SCL: SERCOM2/PAD[1]

	{PortB, 10, PioDigital, AttrDigital, NoADCChannel, NotOnPWM, NotOnTimer, ExtIntNone}, // WINC enable
	{PortB, 11, PioDigital, AttrDigital, NoADCChannel, NotOnPWM, NotOnTimer, ExtIntNone}, // WINC wake
	{PortA, 10, PioDigital, AttrDigital, NoADCChannel, NotOnPWM, NotOnTimer, ExtIntNone}, // WINC reset
	{PortA, 20, PioDigital, AttrDigital, NoADCChannel, NotOnPWM, NotOnTimer, ExtInt4},    // WINC irq
	{PortA, 18, PioDigital, AttrDigital, NoADCChannel, NotOnPWM, NotOnTimer, ExtIntNone}, // WINC CS

	// SERCOM1, DIPO=3 DOPO=0
	{PortA, 16, PioSercom, AttrDigital, NoADCChannel, NotOnPWM, NotOnTimer, ExtIntNone}, // MOSI: SERCOM1/PAD[0]
	{PortA, 17, PioSercom, AttrDigital, NoADCChannel, NotOnPWM, NotOnTimer, ExtIntNone}, // SCK:  SERCOM1/PAD[1]
	{PortA, 19, PioSercom, AttrDigital, NoADCChannel, NotOnPWM, NotOnTimer, ExtIntNone}, // MISO: SERCOM1/PAD[3]

	// SERCOM5 (alt), RXPO=3 TXPO=1
	{PortB, 23, PioSercomAlt, AttrDigital, NoADCChannel, NotOnPWM, NotOnTimer, ExtIntNone}, // RX: SERCOM5/PAD[3]
	{PortB, 22, PioSercomAlt, AttrDigital, NoADCChannel, NotOnPWM, NotOnTimer, ExtIntNone}, // TX: SERCOM5/PAD[2]

	{PortA, 21, PioDigital, AttrDigital, NoADCChannel, NotOnPWM, NotOnTimer, ExtInt5},    // RFM9X CS
	{PortA, 14, PioDigital, AttrDigital, NoADCChannel, NotOnPWM, NotOnTimer, ExtIntNone}, // RFM9X DIO0
	{PortA, 15, PioDigital, AttrDigital, NoADCChannel, NotOnPWM, NotOnTimer, ExtIntNone}, // RFM9X DIO1

	{PortA, 24, PioCom, AttrNone, NoADCChannel, NotOnPWM, NotOnTimer, ExtIntNone},    // USB/DM
	{PortA, 25, PioCom, AttrNone, NoADCChannel, NotOnPWM, NotOnTimer, ExtIntNone},    // USB/DP
	{PortA, 0, PioDigital, AttrNone, NoADCChannel, NotOnPWM, NotOnTimer, ExtIntNone}, // XIN32
	{PortA, 1, PioDigital, AttrNone, NoADCChannel, NotOnPWM, NotOnTimer, ExtIntNone}, // XOUT32
}

// PinCount is the number of logical pins, derived from the table.
const PinCount = len(pinDescriptions)

var pinRoles = [PinCount]string{
	"light_sensor",
	"light_sensor_pwr",
	"switch",
	"led",
	"buzzer",
	"ws2812",
	"wire_sda",
	"wire_scl",
	"wire1_sda",
	"wire1_scl",
	"winc_en",
	"winc_wake",
	"winc_rst",
	"winc_irq",
	"winc_cs",
	"winc_mosi",
	"winc_sck",
	"winc_miso",
	"winc_rx",
	"winc_tx",
	"rfm9x_cs",
	"rfm9x_dio0",
	"rfm9x_dio1",
	"usb_dm",
	"usb_dp",
	"xin32",
	"xout32",
}

// Count returns the number of logical pins.
func Count() int { return PinCount }

// Pin returns the descriptor for logical pin i. It panics if i is outside
// [0, Count()).
func Pin(i int) PinDescriptor { return pinDescriptions[i] }

// Lookup is the checked form of Pin.
func Lookup(i int) (PinDescriptor, bool) {
	if i < 0 || i >= PinCount {
		return PinDescriptor{}, false
	}
	return pinDescriptions[i], true
}

// Pins returns a copy of the whole table.
func Pins() [PinCount]PinDescriptor { return pinDescriptions }

// Role returns the board role name of logical pin i, or "" if out of range.
func Role(i int) string {
	if i < 0 || i >= PinCount {
		return ""
	}
	return pinRoles[i]
}

// FindPad returns the logical pin wired to the given pad.
func FindPad(p Port, pad uint8) (int, bool) {
	for i, d := range pinDescriptions {
		if d.Port == p && d.Pad == pad {
			return i, true
		}
	}
	return -1, false
}
