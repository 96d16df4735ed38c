// flashctl pokes at an SPI NOR flash chip wired to a Raspberry Pi.
//
//	flashctl [-cs pin] [-id 0xEF30] id
//	flashctl uid
//	flashctl status
//	flashctl dump <addr> <len> <file>
//	flashctl write <addr> <file>
//	flashctl erase
//	flashctl erase4k <addr>
//	flashctl sleep | wake
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/rabidaudio/spiflash"
	"github.com/rabidaudio/spiflash/rpibus"
)

var (
	csPin   = flag.Uint("cs", 8, "BCM pin number wired to the chip select line")
	jedecID = flag.Uint("id", 0, "expected JEDEC id, 0 to skip the check")
)

func main() {
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	bus, err := rpibus.Open(uint8(*csPin))
	if err != nil {
		log.Fatalf("open spi: %v", err)
	}
	flash := spiflash.New(bus, uint16(*jedecID))
	defer flash.Close()

	if err := flash.Initialize(); err != nil {
		log.Fatalf("initialize: %v", err)
	}

	if err := run(flash, flag.Args()); err != nil {
		log.Fatal(err)
	}
}

func run(flash *spiflash.Device, args []string) error {
	switch cmd := args[0]; cmd {
	case "id":
		fmt.Printf("0x%04X\n", flash.DeviceID())
	case "uid":
		uid, err := flash.UniqueID()
		if err != nil {
			return err
		}
		fmt.Printf("% X\n", uid)
	case "status":
		status, err := flash.ReadStatus()
		if err != nil {
			return err
		}
		fmt.Printf("0x%02X\n", status)
	case "dump":
		addr, length, err := addrLen(args[1:])
		if err != nil {
			return err
		}
		buf := make([]byte, length)
		if err := flash.ReadBytes(addr, buf); err != nil {
			return err
		}
		return os.WriteFile(args[3], buf, 0o644)
	case "write":
		if len(args) < 3 {
			return fmt.Errorf("usage: write <addr> <file>")
		}
		addr, err := parseNum(args[1])
		if err != nil {
			return err
		}
		data, err := os.ReadFile(args[2])
		if err != nil {
			return err
		}
		empty, err := flash.RegionIsEmpty(addr, len(data))
		if err != nil {
			return err
		}
		if !empty {
			return fmt.Errorf("region 0x%06X+%d is not erased", addr, len(data))
		}
		return flash.WriteBytes(addr, data)
	case "erase":
		return flash.ChipErase()
	case "erase4k":
		if len(args) < 2 {
			return fmt.Errorf("usage: erase4k <addr>")
		}
		addr, err := parseNum(args[1])
		if err != nil {
			return err
		}
		return flash.BlockErase4K(addr)
	case "sleep":
		return flash.Sleep()
	case "wake":
		return flash.Wakeup()
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func addrLen(args []string) (addr uint32, length int, err error) {
	if len(args) < 3 {
		return 0, 0, fmt.Errorf("usage: dump <addr> <len> <file>")
	}
	addr, err = parseNum(args[0])
	if err != nil {
		return
	}
	n, err := parseNum(args[1])
	return addr, int(n), err
}

func parseNum(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 0, 32)
	return uint32(n), err
}
