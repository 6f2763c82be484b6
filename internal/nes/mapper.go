package nes

import "fmt"

// Mapper translates CPU accesses inside the $8000-$FFFF program window
// onto the cartridge's physical banks. ROM is not writable: a write
// either hits a mapper register or is dropped, matching the hardware.
type Mapper interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, data uint8)
	SelectBank(index uint8) error
}

func newMapper(cart *Cart) (Mapper, error) {
	switch cart.mapperID {
	case 0:
		return &mapperNROM{cart: cart}, nil
	case 2:
		return newMapperUNROM(cart), nil
	}
	return nil, fmt.Errorf("unsupported mapper %d", cart.mapperID)
}

// mapperNROM (iNES mapper 0): a single bank mirrored across the
// window, or two banks filling it. No switching.
type mapperNROM struct {
	cart *Cart
}

func (m mapperNROM) Read8(addr uint16) uint8 {
	if m.cart.prgBanks > 1 {
		return m.cart.prgMem[addr&0x7fff]
	}
	return m.cart.prgMem[addr&0x3fff]
}

func (m *mapperNROM) Write8(addr uint16, data uint8) {
	// PRG ROM, dropped
}

func (m *mapperNROM) SelectBank(index uint8) error {
	if index != 0 {
		return fmt.Errorf("mapper 0 has no switchable banks")
	}
	return nil
}

// mapperUNROM (iNES mapper 2): the low half of the window is a
// switchable 16KB bank, the high half is fixed to the last bank.
// A write anywhere in the window loads the bank register.
type mapperUNROM struct {
	cart     *Cart
	bank     uint8
	lastBank uint8
}

func newMapperUNROM(cart *Cart) *mapperUNROM {
	return &mapperUNROM{
		cart:     cart,
		lastBank: cart.prgBanks - 1,
	}
}

func (m mapperUNROM) Read8(addr uint16) uint8 {
	bank := m.bank
	if addr >= 0xc000 {
		bank = m.lastBank
	}
	offset := uint32(bank)*prgBankSizeBytes + uint32(addr&0x3fff)
	return m.cart.prgMem[offset]
}

func (m *mapperUNROM) Write8(addr uint16, data uint8) {
	// the bank register shadows the whole window; the hardware wraps
	// the value to the banks that exist
	m.bank = data % m.cart.prgBanks
}

func (m *mapperUNROM) SelectBank(index uint8) error {
	if index >= m.cart.prgBanks {
		return fmt.Errorf("bank %d out of range, cartridge has %d banks", index, m.cart.prgBanks)
	}
	m.bank = index
	return nil
}
