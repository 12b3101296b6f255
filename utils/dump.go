package utils

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"
	"os"

	"github.com/google/uuid"
)

var dumpMagic = [8]byte{'G', 'O', 'H', 'Y', 'D', 'R', 'O', 0}

const (
	dumpVersion     = 1
	dumpBlockValues = 1 << 16
	maxDumpValues   = 1 << 40
)

// DumpHeader precedes the raw little endian float64 payload of an Array4D dump
type DumpHeader struct {
	Magic               [8]byte
	Version             uint32
	NVar, NX3, NX2, NX1 uint32
	Gamma               float64
	RunID               [16]byte
}

func (h DumpHeader) RunUUID() uuid.UUID {
	return uuid.UUID(h.RunID)
}

func WriteArray4D(w io.Writer, A *Array4D, gamma float64, runID uuid.UUID) (err error) {
	var (
		bw  = bufio.NewWriter(w)
		hdr = DumpHeader{
			Magic:   dumpMagic,
			Version: dumpVersion,
			NVar:    uint32(A.NVar),
			NX3:     uint32(A.NX3),
			NX2:     uint32(A.NX2),
			NX1:     uint32(A.NX1),
			Gamma:   gamma,
			RunID:   runID,
		}
	)
	if err = binary.Write(bw, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("writing dump header: %w", err)
	}
	if err = binary.Write(bw, binary.LittleEndian, A.DataP); err != nil {
		return fmt.Errorf("writing dump payload: %w", err)
	}
	return bw.Flush()
}

func ReadArray4D(r io.Reader) (A *Array4D, hdr DumpHeader, err error) {
	br := bufio.NewReader(r)
	if err = binary.Read(br, binary.LittleEndian, &hdr); err != nil {
		err = fmt.Errorf("reading dump header: %w", err)
		return
	}
	if hdr.Magic != dumpMagic {
		err = fmt.Errorf("not an array dump, magic is %q", hdr.Magic[:])
		return
	}
	if hdr.Version != dumpVersion {
		err = fmt.Errorf("unsupported dump version %d", hdr.Version)
		return
	}
	if !(hdr.Gamma > 1) {
		err = fmt.Errorf("dump adiabatic index must be greater than 1, have %g", hdr.Gamma)
		return
	}
	var nTotal uint64 = 1
	for _, dim := range [4]uint32{hdr.NVar, hdr.NX3, hdr.NX2, hdr.NX1} {
		hi, lo := bits.Mul64(nTotal, uint64(dim))
		if hi != 0 || lo > maxDumpValues {
			err = fmt.Errorf("dump dimensions (%d,%d,%d,%d) are too large",
				hdr.NVar, hdr.NX3, hdr.NX2, hdr.NX1)
			return
		}
		nTotal = lo
	}
	// The payload is read in blocks so a header claiming more data than the
	// stream holds fails on the short read before the full allocation
	data := make([]float64, 0, min(nTotal, dumpBlockValues))
	for remaining := nTotal; remaining > 0; {
		block := make([]float64, min(remaining, dumpBlockValues))
		if err = binary.Read(br, binary.LittleEndian, block); err != nil {
			err = fmt.Errorf("reading dump payload: %w", err)
			return
		}
		data = append(data, block...)
		remaining -= uint64(len(block))
	}
	A = &Array4D{
		NVar:  int(hdr.NVar),
		NX3:   int(hdr.NX3),
		NX2:   int(hdr.NX2),
		NX1:   int(hdr.NX1),
		DataP: data,
	}
	return
}

func WriteArray4DFile(fileName string, A *Array4D, gamma float64, runID uuid.UUID) (err error) {
	var file *os.File
	if file, err = os.Create(fileName); err != nil {
		return
	}
	if err = WriteArray4D(file, A, gamma, runID); err != nil {
		file.Close()
		return
	}
	return file.Close()
}

func ReadArray4DFile(fileName string) (A *Array4D, hdr DumpHeader, err error) {
	var file *os.File
	if file, err = os.Open(fileName); err != nil {
		return
	}
	defer file.Close()
	return ReadArray4D(file)
}
