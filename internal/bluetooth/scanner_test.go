package bluetooth

import (
	"testing"

	"tinygo.org/x/bluetooth"

	"tilt-monitor.klederson.com/internal/tilt"
)

// The BlueZ backend hands back parsed fields, not the raw packet; rawAD must
// rebuild something the decoder accepts.
func TestRawADRoundTrip(t *testing.T) {
	full := tilt.EncodeBeacon(tilt.ColorOrange, 70, 1044)
	want, err := tilt.Decode(full, "Tilt")
	if err != nil {
		t.Fatalf("encode/decode sanity: %v", err)
	}

	// Pull the manufacturer payload back out of the encoded packet: skip
	// flags (3 bytes) and name (6 bytes), then the structure header and
	// company ID (little endian 0x004C).
	mfr := full[9:]
	data := mfr[4:]

	raw := rawAD("Tilt", []bluetooth.ManufacturerDataElement{
		{CompanyID: 0x004C, Data: data},
	})
	got, err := tilt.Decode(raw, "Tilt")
	if err != nil {
		t.Fatalf("Decode(rawAD) failed: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestRawADIgnoresForeignManufacturers(t *testing.T) {
	raw := rawAD("Tilt", []bluetooth.ManufacturerDataElement{
		{CompanyID: 0x0499, Data: []byte{0x01, 0x02, 0x03}},
	})
	if _, err := tilt.Decode(raw, "Tilt"); err == nil {
		t.Error("foreign manufacturer data should not decode")
	}
}
