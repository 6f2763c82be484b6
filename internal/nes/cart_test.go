package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bank-sized image where every byte carries its bank index, so reads
// reveal which physical bank backs a window
func bankedImage(banks int) []uint8 {
	prg := make([]uint8, banks*prgBankSizeBytes)
	for i := range prg {
		prg[i] = uint8(i / prgBankSizeBytes)
	}
	return prg
}

func Test_NewCartFromBanks_Validation(t *testing.T) {
	_, err := NewCartFromBanks(0, nil)
	assert.Error(t, err)

	_, err = NewCartFromBanks(2, make([]uint8, prgBankSizeBytes))
	assert.Error(t, err, "image size must match the bank count")
}

func Test_Cart_NROMSingleBankMirroring(t *testing.T) {
	prg := bankedImage(1)
	prg[0x0123] = 0xab
	cart, err := NewCartFromBanks(1, prg)
	require.NoError(t, err)

	assert.Equal(t, uint8(0xab), cart.Read8(0x8123))
	assert.Equal(t, uint8(0xab), cart.Read8(0xc123), "single bank mirrors into the upper half")
}

func Test_Cart_NROMTwoBanksFlat(t *testing.T) {
	cart, err := NewCartFromBanks(2, bankedImage(2))
	require.NoError(t, err)

	assert.Equal(t, uint8(0), cart.Read8(0x8000))
	assert.Equal(t, uint8(1), cart.Read8(0xc000))
}

func Test_Cart_NROMSelectBank(t *testing.T) {
	cart, err := NewCartFromBanks(2, bankedImage(2))
	require.NoError(t, err)

	assert.NoError(t, cart.SelectBank(0))
	assert.Error(t, cart.SelectBank(1), "fixed mapper has nothing to switch")
}

func Test_Cart_UNROMBankSwitching(t *testing.T) {
	cart, err := NewCartFromBanks(4, bankedImage(4))
	require.NoError(t, err)
	require.Equal(t, uint8(4), cart.PrgBankCount())

	// bank 0 is selected at power-on, the last bank is fixed
	assert.Equal(t, uint8(0), cart.Read8(0x8000))
	assert.Equal(t, uint8(3), cart.Read8(0xc000))

	require.NoError(t, cart.SelectBank(2))
	assert.Equal(t, uint8(2), cart.Read8(0x8000))
	assert.Equal(t, uint8(3), cart.Read8(0xc000), "fixed bank unaffected by switching")

	assert.Error(t, cart.SelectBank(4), "bank index out of range")
	assert.Equal(t, uint8(2), cart.Read8(0x8000), "failed switch leaves the selection alone")
}

func Test_Cart_UNROMRegisterWrite(t *testing.T) {
	cart, err := NewCartFromBanks(4, bankedImage(4))
	require.NoError(t, err)

	// games switch banks by writing anywhere in the ROM window
	cart.Write8(0x8000, 0x01)
	assert.Equal(t, uint8(1), cart.Read8(0x8000))

	cart.Write8(0xffff, 0x03)
	assert.Equal(t, uint8(3), cart.Read8(0x8000))
}

func Test_Cart_ROMWriteDropped(t *testing.T) {
	cart, err := NewCartFromBanks(2, bankedImage(2))
	require.NoError(t, err)

	cart.Write8(0x8000, 0xff)
	assert.Equal(t, uint8(0), cart.Read8(0x8000))
}

func Test_Cart_SRAMRoundTrip(t *testing.T) {
	cart, err := NewCartFromBanks(1, bankedImage(1))
	require.NoError(t, err)

	cart.Write8(0x6000, 0x42)
	assert.Equal(t, uint8(0x42), cart.Read8(0x6000))
}

func Test_NewMapper_Unsupported(t *testing.T) {
	cart := &Cart{mapperID: 1, prgBanks: 2}
	_, err := newMapper(cart)
	assert.Error(t, err)
}
