// Package tilt decodes Tilt hydrometer broadcasts. The Tilt repurposes the
// iBeacon advertisement format as a generic two-field sensor payload: the
// major number carries the wort temperature in whole degrees Fahrenheit, the
// minor number the specific gravity in milli-gravity units, and the proximity
// UUID selects the device color.
package tilt

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"tilt-monitor.klederson.com/internal/config"
)

var (
	// ErrNotATilt means the advertising device is not a Tilt hydrometer.
	ErrNotATilt = errors.New("not a Tilt advertisement")
	// ErrNoBeaconStructure means no iBeacon structure was found in the payload.
	ErrNoBeaconStructure = errors.New("no beacon structure in advertisement")
	// ErrMalformed means the payload could not be walked as AD structures.
	ErrMalformed = errors.New("malformed advertisement")
)

const (
	adTypeFlags            = 0x01
	adTypeCompleteName     = 0x09
	adTypeManufacturerData = 0xFF

	appleCompanyID = 0x004C
	beaconType     = 0x02
	beaconLength   = 0x15 // 16-byte UUID + major + minor + tx power
)

// beaconUUIDs lists the fixed proximity UUIDs the Tilt firmware broadcasts,
// one per device color.
var beaconUUIDs = []struct {
	uuid  [16]byte
	color Color
}{
	{mustUUID("a495bb10c5b14b44b5121370f02d74de"), ColorRed},
	{mustUUID("a495bb20c5b14b44b5121370f02d74de"), ColorGreen},
	{mustUUID("a495bb30c5b14b44b5121370f02d74de"), ColorBlack},
	{mustUUID("a495bb40c5b14b44b5121370f02d74de"), ColorPurple},
	{mustUUID("a495bb50c5b14b44b5121370f02d74de"), ColorOrange},
	{mustUUID("a495bb60c5b14b44b5121370f02d74de"), ColorBlue},
	{mustUUID("a495bb70c5b14b44b5121370f02d74de"), ColorYellow},
	{mustUUID("a495bb80c5b14b44b5121370f02d74de"), ColorPink},
}

func mustUUID(s string) [16]byte {
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 16 {
		panic("bad uuid literal: " + s)
	}
	var u [16]byte
	copy(u[:], b)
	return u
}

func colorOf(uuid [16]byte) Color {
	for _, e := range beaconUUIDs {
		if e.uuid == uuid {
			return e.color
		}
	}
	return ColorUnknown
}

func uuidOf(c Color) [16]byte {
	for _, e := range beaconUUIDs {
		if e.color == c {
			return e.uuid
		}
	}
	// Unknown colors get the red UUID with the variant nibble zeroed, so the
	// structure still parses as an iBeacon but maps to no known color.
	u := beaconUUIDs[0].uuid
	u[2] = 0x00
	return u
}

// Decode extracts a Reading from a raw advertisement payload. The device must
// advertise the Tilt local name; the payload is walked as a sequence of AD
// structures and the first iBeacon structure wins. The color is advisory: an
// unrecognized proximity UUID still yields the temperature and gravity.
// Decode is pure and never panics on malformed input.
func Decode(raw []byte, localName string) (Reading, error) {
	if localName != config.BeaconName {
		return Reading{}, fmt.Errorf("%w: device name %q", ErrNotATilt, localName)
	}

	for i := 0; i < len(raw); {
		length := int(raw[i])
		if length == 0 {
			// Zero-length padding terminates the significant part.
			break
		}
		if i+1+length > len(raw) {
			return Reading{}, fmt.Errorf("%w: structure at offset %d overruns payload", ErrMalformed, i)
		}
		adType := raw[i+1]
		data := raw[i+2 : i+1+length]
		if adType == adTypeManufacturerData {
			if r, ok := parseBeacon(data); ok {
				return r, nil
			}
		}
		i += 1 + length
	}
	return Reading{}, ErrNoBeaconStructure
}

// parseBeacon interprets one manufacturer-specific AD structure as an iBeacon:
// company ID (little endian), beacon type and length, proximity UUID, then
// big-endian major and minor.
func parseBeacon(data []byte) (Reading, bool) {
	if len(data) < 2+2+16+2+2+1 {
		return Reading{}, false
	}
	if binary.LittleEndian.Uint16(data[0:2]) != appleCompanyID {
		return Reading{}, false
	}
	if data[2] != beaconType || data[3] != beaconLength {
		return Reading{}, false
	}

	var uuid [16]byte
	copy(uuid[:], data[4:20])
	major := binary.BigEndian.Uint16(data[20:22])
	minor := binary.BigEndian.Uint16(data[22:24])

	return Reading{
		Color:        colorOf(uuid),
		TempF:        int(major),
		GravityMilli: int(minor),
	}, true
}

// EncodeBeacon builds a complete advertisement payload (flags, local name,
// iBeacon structure) carrying the given values. It is the inverse of Decode
// and feeds the demo scanner and tests.
func EncodeBeacon(c Color, tempF, gravityMilli int) []byte {
	uuid := uuidOf(c)

	mfr := make([]byte, 0, 2+2+16+2+2+1)
	mfr = binary.LittleEndian.AppendUint16(mfr, appleCompanyID)
	mfr = append(mfr, beaconType, beaconLength)
	mfr = append(mfr, uuid[:]...)
	mfr = binary.BigEndian.AppendUint16(mfr, uint16(tempF))
	mfr = binary.BigEndian.AppendUint16(mfr, uint16(gravityMilli))
	mfr = append(mfr, 0xC5) // nominal tx power

	var raw []byte
	raw = append(raw, 2, adTypeFlags, 0x04)
	raw = append(raw, byte(1+len(config.BeaconName)), adTypeCompleteName)
	raw = append(raw, config.BeaconName...)
	raw = append(raw, byte(1+len(mfr)), adTypeManufacturerData)
	raw = append(raw, mfr...)
	return raw
}
