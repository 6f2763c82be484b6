package nes

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const (
	inesMagic        = 0x1a53454e
	prgBankSizeBytes = 0x4000
	chrBankSizeBytes = 0x2000
	sramSizeBytes    = 0x2000
)

// Cart holds the cartridge-supplied program and character banks plus
// battery RAM, and routes CPU-visible accesses through its mapper.
type Cart struct {
	prgMem []uint8
	chrMem []uint8
	sram   [sramSizeBytes]uint8

	prgBanks uint8
	chrBanks uint8
	mapperID uint8
	mirror   uint8 // 0: horizontal, 1: vertical

	mapper Mapper
}

// NewCartFromBanks installs an already validated program image of
// bankCount 16KB banks, as handed over by an external loader. Images
// larger than the two banks the $8000-$FFFF window holds at once get
// a bank-switched mapper.
func NewCartFromBanks(bankCount int, prg []uint8) (*Cart, error) {
	if bankCount < 1 || bankCount > 0xff {
		return nil, fmt.Errorf("cart: bank count %d out of range", bankCount)
	}
	if len(prg) != bankCount*prgBankSizeBytes {
		return nil, fmt.Errorf("cart: program image is %d bytes, want %d for %d banks",
			len(prg), bankCount*prgBankSizeBytes, bankCount)
	}

	cart := &Cart{
		prgMem:   prg,
		chrMem:   make([]uint8, chrBankSizeBytes),
		prgBanks: uint8(bankCount),
	}
	if bankCount > 2 {
		cart.mapperID = 2
	}
	mapper, err := newMapper(cart)
	if err != nil {
		return nil, err
	}
	cart.mapper = mapper
	return cart, nil
}

// NewCartFromFile reads a .nes file and returns a Cart.
// Supported container format: iNES.
func NewCartFromFile(path string) (*Cart, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open the file: %w", err)
	}
	defer file.Close()

	var header struct {
		Magic      uint32
		PrgRomSize uint8
		ChrRomSize uint8
		Flags6     uint8
		Flags7     uint8
		Flags8     uint8
		Flags9     uint8
		Flags10    uint8
		_          [5]uint8 // unused
	}
	if err := binary.Read(file, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("couldn't read the header: %w", err)
	}
	if header.Magic != inesMagic {
		return nil, fmt.Errorf("invalid header")
	}
	// the third bit of flags6 is the trainer flag
	if header.Flags6&0x4 != 0 {
		if _, err := file.Seek(512, io.SeekCurrent); err != nil {
			return nil, fmt.Errorf("couldn't skip the trainer: %w", err)
		}
	}

	// flags 6 and 7 carry the mapper ID, four bits each:
	// flags6 high nibble is the low half, flags7 high nibble the high half
	mapperID := (header.Flags7 & 0xf0) | (header.Flags6 >> 4)

	cart := &Cart{
		prgMem:   make([]uint8, int(header.PrgRomSize)*prgBankSizeBytes),
		chrMem:   make([]uint8, int(header.ChrRomSize)*chrBankSizeBytes),
		prgBanks: header.PrgRomSize,
		chrBanks: header.ChrRomSize,
		mapperID: mapperID,
		mirror:   header.Flags6 & 0x1,
	}
	if cart.chrBanks == 0 {
		cart.chrMem = make([]uint8, chrBankSizeBytes) // CHR RAM
	}
	mapper, err := newMapper(cart)
	if err != nil {
		return nil, err
	}
	cart.mapper = mapper

	if n, err := file.Read(cart.prgMem); n != len(cart.prgMem) || err != nil {
		if err == nil {
			err = fmt.Errorf("expected %d bytes, read %d bytes", len(cart.prgMem), n)
		}
		return nil, fmt.Errorf("couldn't read PRG ROM: %w", err)
	}
	if cart.chrBanks > 0 {
		if n, err := file.Read(cart.chrMem); n != len(cart.chrMem) || err != nil {
			if err == nil {
				err = fmt.Errorf("expected %d bytes, read %d bytes", len(cart.chrMem), n)
			}
			return nil, fmt.Errorf("couldn't read CHR ROM: %w", err)
		}
	}

	return cart, nil
}

// Read8 routes a CPU access inside the cartridge window ($4020-$FFFF).
// The expansion area is unpopulated, $6000-$7FFF is battery RAM, and
// everything above goes through the mapper.
func (c *Cart) Read8(addr uint16) uint8 {
	switch {
	case addr < 0x6000:
		return 0
	case addr < 0x8000:
		return c.sram[addr-0x6000]
	default:
		return c.mapper.Read8(addr)
	}
}

func (c *Cart) Write8(addr uint16, data uint8) {
	switch {
	case addr < 0x6000:
	case addr < 0x8000:
		c.sram[addr-0x6000] = data
	default:
		c.mapper.Write8(addr, data)
	}
}

// SelectBank re-points which physical program bank backs the
// switchable part of the $8000-$FFFF window. It never copies data.
func (c *Cart) SelectBank(index uint8) error {
	return c.mapper.SelectBank(index)
}

func (c Cart) PrgBankCount() uint8 {
	return c.prgBanks
}
